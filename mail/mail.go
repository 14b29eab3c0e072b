// SPDX-License-Identifier: GPL-3.0-or-later

// Package mail turns raw RFC822 bytes into the capped, decoded RawMessage
// the pipeline works on.
package mail

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	// Registers decoders for the legacy charsets bank mails still use.
	_ "github.com/emersion/go-message/charset"
	gomail "github.com/emersion/go-message/mail"

	"github.com/mailspend/mailspend/domain"
)

const (
	// MaxBodyChars caps the plain-text body handed to classification and
	// extraction; receipts carry their figures early.
	MaxBodyChars = 3000
	// MaxExcerptChars caps the raw excerpt kept for debugging.
	MaxExcerptChars = 5000
)

// Parse decodes one raw mail. Subject and sender are MIME-word decoded, the
// body is the first text/plain part, and dates fall back through Indian
// DD/MM/YYYY formats before giving up.
func Parse(externalID string, raw []byte) (*domain.RawMessage, error) {
	mr, err := gomail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("could not read mail: %w", err)
	}

	header := mr.Header

	subject, err := header.Subject()
	if err != nil {
		// Undecodable encoded-words degrade to the raw header value.
		subject = header.Get("Subject")
	}

	sender := ""
	if addrs, err := header.AddressList("From"); err == nil && len(addrs) > 0 {
		sender = addrs[0].Address
	} else {
		sender = header.Get("From")
	}

	receivedAt, err := header.Date()
	if err != nil || receivedAt.IsZero() {
		receivedAt = ParseDate(header.Get("Date"))
	}

	body := extractBody(mr)
	if len(body) > MaxBodyChars {
		body = body[:MaxBodyChars]
	}

	excerpt := string(raw)
	if len(excerpt) > MaxExcerptChars {
		excerpt = excerpt[:MaxExcerptChars]
	}

	return &domain.RawMessage{
		ExternalID: externalID,
		MessageID:  strings.Trim(header.Get("Message-Id"), "<>"),
		Sender:     sender,
		Subject:    subject,
		Body:       body,
		ReceivedAt: receivedAt,
		RawExcerpt: excerpt,
	}, nil
}

// extractBody walks the inline parts and returns the first text/plain one.
// HTML-only mail yields an empty body; the classifier then judges it on
// sender and subject alone.
func extractBody(mr *gomail.Reader) string {
	for {
		part, err := mr.NextPart()
		if err != nil {
			return ""
		}

		header, ok := part.Header.(*gomail.InlineHeader)
		if !ok {
			continue
		}

		contentType, _, err := header.ContentType()
		if err != nil {
			continue
		}

		if strings.HasPrefix(contentType, "text/plain") {
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return ""
			}
			return string(body)
		}
	}
}

var dateLayouts = []string{
	// Standard mail date formats
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04:05",
	// Indian DD/MM/YYYY formats seen in bank alert mails
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006 15:04:05",
	"02-01-2006",
}

// ParseDate parses a date header, falling back to now when nothing fits so
// a bad header never drops an otherwise good receipt.
func ParseDate(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Now()
}
