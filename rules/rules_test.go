// SPDX-License-Identifier: GPL-3.0-or-later
package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTablesPopulated(t *testing.T) {
	set := Default()

	assert.NotEmpty(t, set.BlockedSenders)
	assert.NotEmpty(t, set.TrustedSenders)
	assert.NotEmpty(t, set.SpamSubjectKeywords)
	assert.NotEmpty(t, set.SpamBodyKeywords)
	assert.NotEmpty(t, set.TransactionSubjectKeywords)
	assert.NotEmpty(t, set.TransactionBodyKeywords)
	assert.NotEmpty(t, set.Merchants)
	assert.NotEmpty(t, set.Categories)
	assert.NotEmpty(t, set.PaymentMethods)
	assert.NotEmpty(t, set.AmountPatterns)
	assert.NotEmpty(t, set.FallbackAmountPatterns)
	assert.NotEmpty(t, set.GSTPatterns)
	assert.NotEmpty(t, set.TransactionIDPatterns)
	assert.NotNil(t, set.CurrencyPattern)
}

func TestIsBlockedSender(t *testing.T) {
	set := Default()

	tests := []struct {
		name    string
		sender  string
		blocked bool
	}{
		{"marketing", "updates@marketing.shop.com", true},
		{"marketing_uppercase", "UPDATES@MARKETING.SHOP.COM", true},
		{"zomato_notifications", "offers@notifications.zomato.com", true},
		{"noreply_sale", "noreply-summer-sale@shop.com", true},
		{"bank", "alerts@hdfcbank.net", false},
		{"plain", "friend@example.com", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.blocked, set.IsBlockedSender(tc.sender))
		})
	}
}

func TestIsTrustedSender(t *testing.T) {
	set := Default()

	tests := []struct {
		name    string
		sender  string
		trusted bool
	}{
		{"hdfc", "alerts@hdfcbank.net", true},
		{"hdfc_uppercase", "ALERTS@HDFCBANK.NET", true},
		{"flipkart", "noreply@flipkart.com", true},
		{"swiggy", "orders@swiggy.in", true},
		{"unknown", "someone@example.com", false},
		{"lookalike", "alerts@hdfcbank.evil.net", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.trusted, set.IsTrustedSender(tc.sender))
		})
	}
}
