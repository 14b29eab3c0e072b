// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

// Scoring weights. These are part of the rule model; the acceptance
// threshold the score is compared against is configuration, not a weight.
const (
	trustedSenderBonus  = 30
	blockedSenderMalus  = 50
	subjectHitWeight    = 10
	subjectHitCap       = 25
	bodyHitWeight       = 5
	bodyHitCap          = 25
	spamHitWeight       = 15
	spamHitCap          = 30
	currencyMarkerBonus = 10
	knownMerchantBonus  = 10
)

// UnknownMerchant is the merchant placeholder when no table entry matched.
const UnknownMerchant = "Unknown Merchant"

// Score rates an extracted candidate from 0 to 100. It is additive from
// zero: sender reputation, transaction keyword density, spam keyword
// penalty, a currency marker and a resolved merchant all contribute.
// The amount itself does not weigh in; only the presence of an INR marker
// in the text does.
func (c *Classifier) Score(sender, subject, body string, amount float64, merchant string) int {
	score := 0

	if c.rules.IsTrustedSender(sender) {
		score += trustedSenderBonus
	}
	if c.rules.IsBlockedSender(sender) {
		score -= blockedSenderMalus
	}

	subjectHits := countKeywords(subject, c.rules.TransactionSubjectKeywords)
	score += capped(subjectHits*subjectHitWeight, subjectHitCap)

	bodyHits := countKeywords(body, c.rules.TransactionBodyKeywords)
	score += capped(bodyHits*bodyHitWeight, bodyHitCap)

	spamHits := countKeywords(subject, c.rules.SpamSubjectKeywords)
	score -= capped(spamHits*spamHitWeight, spamHitCap)

	if c.rules.CurrencyPattern.MatchString(subject + " " + body) {
		score += currencyMarkerBonus
	}

	if merchant != "" && merchant != UnknownMerchant {
		score += knownMerchantBonus
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func capped(value, limit int) int {
	if value > limit {
		return limit
	}
	return value
}
