// SPDX-License-Identifier: GPL-3.0-or-later
package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailspend/mailspend/classifier"
	"github.com/mailspend/mailspend/rules"
)

func TestExtractOrderConfirmation(t *testing.T) {
	e := New(rules.Default())

	text := "Your order has been confirmed\n" +
		"Order#AB12345\n" +
		"Total Amount: ₹2,499.00\n" +
		"Payment: UPI (Google Pay)\n" +
		"GST: ₹119.00"

	candidate, ok := e.Extract(text, "noreply@flipkart.com")
	assert.True(t, ok)
	assert.Equal(t, 2499.0, candidate.Amount)
	assert.Equal(t, "INR", candidate.Currency)
	assert.Equal(t, "Flipkart", candidate.Merchant)
	assert.Equal(t, "Online Shopping", candidate.Category)
	assert.Equal(t, "UPI - Google Pay", candidate.PaymentMethod)
	assert.Equal(t, 119.0, candidate.GSTAmount)
	assert.Equal(t, "AB12345", candidate.TransactionID)
}

func TestExtractPaymentSuccess(t *testing.T) {
	e := New(rules.Default())

	text := "Payment Successful - Order#AB12345\n₹1,250.00 paid via UPI, upi ref 9876543210"

	candidate, ok := e.Extract(text, "noreply@flipkart.com")
	assert.True(t, ok)
	assert.Equal(t, 1250.0, candidate.Amount)
	assert.Equal(t, "Flipkart", candidate.Merchant)
	assert.Equal(t, "Online Shopping", candidate.Category)
	assert.Equal(t, "UPI", candidate.PaymentMethod)
	assert.Equal(t, "AB12345", candidate.TransactionID)
}

func TestExtractNoMerchant(t *testing.T) {
	e := New(rules.Default())

	candidate, ok := e.Extract("Total: Rs. 899\nGST: Rs. 45", "billing@example.com")
	assert.True(t, ok)
	assert.Equal(t, 899.0, candidate.Amount)
	assert.Equal(t, 45.0, candidate.GSTAmount)
	assert.Equal(t, classifier.UnknownMerchant, candidate.Merchant)
	assert.Equal(t, "Other", candidate.Category)
}

func TestExtractFallbacks(t *testing.T) {
	e := New(rules.Default())

	// No INR marker, no merchant, no payment method: the generic decimal
	// fallback finds the amount and everything else defaults.
	text := "Receipt\nMonthly plan dues: 899.45\nProcessing: 45.20"

	candidate, ok := e.Extract(text, "notify@acmecorp.com")
	assert.True(t, ok)
	assert.Equal(t, 899.45, candidate.Amount)
	assert.Equal(t, classifier.UnknownMerchant, candidate.Merchant)
	assert.Equal(t, "Other", candidate.Category)
	assert.Equal(t, "Unknown", candidate.PaymentMethod)
	assert.Equal(t, 0.0, candidate.GSTAmount)
	assert.Empty(t, candidate.TransactionID)
}

func TestExtractAmount(t *testing.T) {
	e := New(rules.Default())

	tests := []struct {
		name   string
		text   string
		amount float64
		ok     bool
	}{
		{"rupee_symbol", "Paid ₹1,250.50 today", 1250.50, true},
		{"rs_prefix", "Rs. 500 debited", 500, true},
		{"inr_prefix", "INR 2300.00 charged to your card", 2300, true},
		{"keyword_prefix", "Your plan was charged 899.45", 899.45, true},
		{"largest_wins", "Item ₹120, total ₹2,500, tax ₹80", 2500, true},
		{"too_large", "Paid ₹25000000 to builder", 0, false},
		{"too_small", "Paid ₹0.50 for sms", 0, false},
		{"no_amount", "Thanks for signing up!", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			candidate, ok := e.Extract(tc.text, "someone@example.com")
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.amount, candidate.Amount)
			}
		})
	}
}

func TestExtractMerchantFromSender(t *testing.T) {
	e := New(rules.Default())

	// Merchant only visible in the sender address.
	candidate, ok := e.Extract("Your order is confirmed. Total: ₹450", "orders@swiggy.in")
	assert.True(t, ok)
	assert.Equal(t, "Swiggy", candidate.Merchant)
	assert.Equal(t, "Food Delivery", candidate.Category)
}

func TestExtractGSTSumsComponents(t *testing.T) {
	e := New(rules.Default())

	text := "Total: ₹1,250.00\nCGST: ₹59.50\nSGST: ₹59.50"

	candidate, ok := e.Extract(text, "someone@example.com")
	assert.True(t, ok)
	assert.Equal(t, 1250.0, candidate.Amount)
	assert.Equal(t, 119.0, candidate.GSTAmount)
}

func TestExtractPaymentMethod(t *testing.T) {
	e := New(rules.Default())

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"upi_plain", "Amount: ₹500\npaid via upi to merchant@ybl", "UPI"},
		{"upi_phonepe", "Amount: ₹500\nUPI payment via PhonePe", "UPI - PhonePe"},
		{"credit_visa", "Amount: ₹500\ncharged to your Visa credit card", "Credit Card - Visa"},
		{"netbanking", "Amount: ₹500\nnetbanking transfer completed", "Net Banking"},
		{"cod", "Amount: ₹500\ncash on delivery selected", "Cash on Delivery"},
		{"none", "Amount: ₹500\nthank you", "Unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			candidate, ok := e.Extract(tc.text, "someone@example.com")
			assert.True(t, ok)
			assert.Equal(t, tc.expected, candidate.PaymentMethod)
		})
	}
}

func TestExtractTransactionID(t *testing.T) {
	e := New(rules.Default())

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"order_hash", "Paid ₹100\nOrder#AB12345 shipped", "AB12345"},
		{"transaction_id", "Paid ₹100\nTransaction ID: TXN99887766", "TXN99887766"},
		{"upi_ref", "Paid ₹100\nUPI Ref No: 403912345678", "403912345678"},
		{"booking", "Paid ₹100\nBooking ID: PNR-882211", "PNR-882211"},
		{"none", "Paid ₹100 in cash", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			candidate, ok := e.Extract(tc.text, "someone@example.com")
			assert.True(t, ok)
			assert.Equal(t, tc.expected, candidate.TransactionID)
		})
	}
}
