// SPDX-License-Identifier: GPL-3.0-or-later

// Package classifier decides whether a mail is worth extraction and scores
// the confidence of extracted candidates. It is pure rule evaluation over a
// rules.Set; no I/O.
package classifier

import (
	"strings"

	"github.com/mailspend/mailspend/rules"
)

type DropReason string

const (
	DropNone                DropReason = ""
	DropBlockedSender       DropReason = "blocked-sender"
	DropSpamSubject         DropReason = "spam-subject"
	DropSpamBody            DropReason = "spam-body"
	DropNoTransactionSignal DropReason = "no-transaction-signal"
)

// spamBodyThreshold is the number of spam body indicators that marks a mail
// as promotional. A single unsubscribe footer is normal in transactional
// mail; three or more promo phrases are not.
const spamBodyThreshold = 3

type Classification struct {
	Keep        bool
	SubjectHits int
	BodyHits    int
	Reason      DropReason
}

type Classifier struct {
	rules *rules.Set
}

func New(set *rules.Set) *Classifier {
	return &Classifier{rules: set}
}

// Classify applies the drop rules in order; the first matching rule decides.
// Trusted senders bypass the keyword-based rules entirely, since legitimate
// receipts often carry incidental promotional phrasing.
func (c *Classifier) Classify(sender, subject, body string) Classification {
	if c.rules.IsBlockedSender(sender) {
		return Classification{Reason: DropBlockedSender}
	}

	trusted := c.rules.IsTrustedSender(sender)

	if countKeywords(subject, c.rules.SpamSubjectKeywords) >= 1 && !trusted {
		return Classification{Reason: DropSpamSubject}
	}

	if countKeywords(body, c.rules.SpamBodyKeywords) >= spamBodyThreshold && !trusted {
		return Classification{Reason: DropSpamBody}
	}

	subjectHits := countKeywords(subject, c.rules.TransactionSubjectKeywords)
	bodyHits := countKeywords(body, c.rules.TransactionBodyKeywords)
	if subjectHits == 0 && bodyHits == 0 && !trusted {
		return Classification{Reason: DropNoTransactionSignal}
	}

	return Classification{Keep: true, SubjectHits: subjectHits, BodyHits: bodyHits}
}

func countKeywords(text string, keywords []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			count++
		}
	}
	return count
}
