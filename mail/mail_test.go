// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string

		sender    string
		subject   string
		messageID string
		body      string
		day       int
		month     time.Month
		year      int
	}{
		{
			"plain.msg",
			"alerts@hdfcbank.net", "Payment alert", "abc123@hdfcbank.net",
			"Rs.2500.00 debited from your account ending 1234.",
			15, time.January, 2024,
		},
		{
			"multipart.msg",
			"noreply@flipkart.com", "Order confirmed", "order789@flipkart.com",
			"Order#AB12345 confirmed. Total: Rs.2499",
			16, time.January, 2024,
		},
		{
			"baddate.msg",
			"alerts@icicibank.com", "Transaction alert", "x1@icicibank.com",
			"INR 450.00 debited via UPI.",
			15, time.January, 2024,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := os.ReadFile(path.Join("testdata", tc.name))
			assert.NoError(t, err)

			message, err := Parse("42", raw)
			assert.NoError(t, err)

			assert.Equal(t, "42", message.ExternalID)
			assert.Equal(t, tc.sender, message.Sender)
			assert.Equal(t, tc.subject, message.Subject)
			assert.Equal(t, tc.messageID, message.MessageID)
			assert.Contains(t, message.Body, tc.body)
			assert.NotContains(t, message.Body, "<html>")
			assert.Equal(t, tc.day, message.ReceivedAt.Day())
			assert.Equal(t, tc.month, message.ReceivedAt.Month())
			assert.Equal(t, tc.year, message.ReceivedAt.Year())
			assert.NotEmpty(t, message.RawExcerpt)
		})
	}
}

func TestParseCapsBody(t *testing.T) {
	header := "From: a@example.com\r\nSubject: big\r\nContent-Type: text/plain\r\n\r\n"
	filler := make([]byte, MaxBodyChars*2)
	for i := range filler {
		filler[i] = 'x'
	}

	message, err := Parse("1", append([]byte(header), filler...))
	assert.NoError(t, err)
	assert.Len(t, message.Body, MaxBodyChars)
	assert.LessOrEqual(t, len(message.RawExcerpt), MaxExcerptChars)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("1", []byte("complete nonsense"))
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		day   int
		month time.Month
		year  int
	}{
		{"rfc", "Mon, 15 Jan 2024 10:30:00 +0530", 15, time.January, 2024},
		{"noweekday", "15 Jan 2024 10:30:00 +0530", 15, time.January, 2024},
		{"indian_datetime", "15/01/2024 10:30:00", 15, time.January, 2024},
		{"indian_date", "31/03/2024", 31, time.March, 2024},
		{"indian_dashed", "31-03-2024", 31, time.March, 2024},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed := ParseDate(tc.value)
			assert.Equal(t, tc.day, parsed.Day())
			assert.Equal(t, tc.month, parsed.Month())
			assert.Equal(t, tc.year, parsed.Year())
		})
	}
}

func TestParseDateFallsBackToNow(t *testing.T) {
	parsed := ParseDate("not a date")
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}
