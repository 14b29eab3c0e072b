// SPDX-License-Identifier: GPL-3.0-or-later

// Package extractor pulls structured expense fields out of mail text.
// Extraction is pure and stateless given text and sender; confidence
// scoring and persistence happen elsewhere.
package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mailspend/mailspend/classifier"
	"github.com/mailspend/mailspend/domain"
	"github.com/mailspend/mailspend/rules"
)

const (
	// Plausible single-expense range: ₹1 to ₹1 crore. Figures outside are
	// treated as noise (phone numbers, reference ids).
	MinAmount = 1
	MaxAmount = 10_000_000

	defaultCategory      = "Other"
	defaultPaymentMethod = "Unknown"

	merchantHeadLines = 5
)

type Extractor struct {
	rules *rules.Set
}

func New(set *rules.Set) *Extractor {
	return &Extractor{rules: set}
}

// Extract returns the candidate parsed from text, or ok=false when no
// amount could be found. Amount is the only mandatory field; everything
// else falls back to a default.
func (e *Extractor) Extract(text, sender string) (*domain.ExpenseCandidate, bool) {
	amount, ok := e.extractAmount(text)
	if !ok {
		return nil, false
	}

	return &domain.ExpenseCandidate{
		Amount:        amount,
		Currency:      "INR",
		Merchant:      e.extractMerchant(text, sender),
		Category:      e.extractCategory(text, sender),
		PaymentMethod: e.detectPaymentMethod(text),
		GSTAmount:     e.extractGST(text),
		TransactionID: e.extractTransactionID(text),
	}, true
}

// extractAmount tries the INR patterns in priority order, then the generic
// fallbacks. Within the first matching pattern all plausible figures are
// collected and the maximum wins: the largest number in a receipt is the
// total, not a line item.
func (e *Extractor) extractAmount(text string) (float64, bool) {
	for _, patterns := range [][]*regexp.Regexp{e.rules.AmountPatterns, e.rules.FallbackAmountPatterns} {
		for _, pattern := range patterns {
			matches := pattern.FindAllStringSubmatch(text, -1)
			if len(matches) == 0 {
				continue
			}

			best, found := 0.0, false
			for _, m := range matches {
				val, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
				if err != nil || val < MinAmount || val > MaxAmount {
					continue
				}
				if !found || val > best {
					best, found = val, true
				}
			}
			if found {
				return best, true
			}
		}
	}

	return 0, false
}

// extractMerchant checks the full text and the sender address against the
// ordered merchant table, then retries against only the first few lines.
func (e *Extractor) extractMerchant(text, sender string) string {
	textLower := strings.ToLower(text)
	senderLower := strings.ToLower(sender)

	for _, m := range e.rules.Merchants {
		if strings.Contains(textLower, m.Keyword) || strings.Contains(senderLower, m.Keyword) {
			return m.Name
		}
	}

	lines := strings.Split(textLower, "\n")
	if len(lines) > merchantHeadLines {
		lines = lines[:merchantHeadLines]
	}
	for _, line := range lines {
		for _, m := range e.rules.Merchants {
			if strings.Contains(line, m.Keyword) {
				return m.Name
			}
		}
	}

	return classifier.UnknownMerchant
}

// extractCategory returns the first category whose keyword list matches the
// text or the sender address. Table order is part of the rule set.
func (e *Extractor) extractCategory(text, sender string) string {
	lower := strings.ToLower(text) + "\n" + strings.ToLower(sender)

	for _, c := range e.rules.Categories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c.Name
			}
		}
	}

	return defaultCategory
}

func (e *Extractor) detectPaymentMethod(text string) string {
	lower := strings.ToLower(text)

	for _, method := range e.rules.PaymentMethods {
		if !containsAny(lower, method.Keywords) {
			continue
		}
		for _, variant := range method.Variants {
			if containsAny(lower, variant.Keywords) {
				return variant.Name
			}
		}
		return method.Name
	}

	return defaultPaymentMethod
}

// extractGST sums every positive figure the first matching GST pattern
// yields, so CGST and SGST lines add up to the full tax amount.
func (e *Extractor) extractGST(text string) float64 {
	for _, pattern := range e.rules.GSTPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}

		sum, found := 0.0, false
		for _, m := range matches {
			val, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
			if err != nil || val <= 0 {
				continue
			}
			sum += val
			found = true
		}
		if found {
			return sum
		}
	}

	return 0
}

func (e *Extractor) extractTransactionID(text string) string {
	for _, pattern := range e.rules.TransactionIDPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
