// SPDX-License-Identifier: GPL-3.0-or-later

// Package rules holds the static rule tables driving classification and
// extraction: sender allow/deny patterns, spam and transaction keyword sets,
// and the ordered merchant, category and payment-method tables. The tables
// are read-only at runtime; swap the whole Set to change the rules.
package rules

import "regexp"

type Merchant struct {
	Keyword string
	Name    string
}

type Category struct {
	Name     string
	Keywords []string
}

type Variant struct {
	Name     string
	Keywords []string
}

type PaymentMethod struct {
	Name     string
	Keywords []string
	// Variants refine the method name when one of their keywords also
	// matches, e.g. UPI -> UPI - Google Pay. First match wins.
	Variants []Variant
}

type Set struct {
	BlockedSenders []*regexp.Regexp
	TrustedSenders []*regexp.Regexp

	SpamSubjectKeywords []string
	SpamBodyKeywords    []string

	TransactionSubjectKeywords []string
	TransactionBodyKeywords    []string

	// Ordered tables. First match wins, so order is part of the rule set.
	Merchants      []Merchant
	Categories     []Category
	PaymentMethods []PaymentMethod

	// Amount patterns in priority order; FallbackAmountPatterns are only
	// tried when none of the primary ones match.
	AmountPatterns         []*regexp.Regexp
	FallbackAmountPatterns []*regexp.Regexp

	GSTPatterns           []*regexp.Regexp
	TransactionIDPatterns []*regexp.Regexp

	// CurrencyPattern detects an INR currency marker anywhere in the text.
	CurrencyPattern *regexp.Regexp
}

// IsBlockedSender reports whether the sender matches a blocked pattern.
// Patterns are case-insensitive and unanchored.
func (s *Set) IsBlockedSender(sender string) bool {
	return anyMatch(s.BlockedSenders, sender)
}

// IsTrustedSender reports whether the sender matches a trusted pattern.
func (s *Set) IsTrustedSender(sender string) bool {
	return anyMatch(s.TrustedSenders, sender)
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile("(?i)" + p)
	}
	return compiled
}
