// SPDX-License-Identifier: GPL-3.0-or-later
package mailsync

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mailspend/mailspend/domain"
)

// SyncMailbox runs the unit of work for one mailbox: fetch unread mails in
// the recent window, classify, extract, score, and persist. Every fetched
// mail gets a ProcessedMessage whatever the outcome, so it is never
// re-fetched; an expense is only created when the confidence gate and the
// duplicate check both pass.
//
// The caller must hold the per-mailbox guard; a mailbox never has two
// concurrent sessions from this process.
func (s *Syncer) SyncMailbox(ctx context.Context, config *domain.MailboxConfig) (*domain.SyncResult, error) {
	session, err := s.sessions.Acquire(config)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -s.configuration.FetchWindowDays)
	uids, err := session.SearchUnseenSince(since)
	if err != nil {
		s.sessions.Evict(config.Address)
		return nil, &domain.ConnectionError{Addr: config.Address, Op: "search", Err: err}
	}

	// Over-fetch to compensate for mails the classifier throws away.
	oversample := s.configuration.FetchLimit * oversampleFactor
	if len(uids) > oversample {
		uids = uids[:oversample]
	}

	uids, err = s.filterProcessedUids(config.ID, uids)
	if err != nil {
		return nil, err
	}

	if len(uids) == 0 {
		s.l.WithFields(logrus.Fields{"mailbox": config.Address}).Debug("Mailbox contains no new mails")
		return &domain.SyncResult{}, nil
	}

	messages, err := session.FetchMessages(uids)
	if err != nil {
		s.sessions.Evict(config.Address)
		return nil, &domain.ConnectionError{Addr: config.Address, Op: "fetch", Err: err}
	}

	result := &domain.SyncResult{EmailsFetched: len(messages)}
	for _, message := range messages {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if result.EmailsAccepted >= s.configuration.FetchLimit {
			break
		}

		expenseID, accepted, err := s.processMessage(config, message)
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			// Another pass got here first; nothing to redo.
			continue
		}
		if err != nil {
			return result, fmt.Errorf("could not process message %s: %w", message.ExternalID, err)
		}

		if accepted {
			result.EmailsAccepted++
		}
		if expenseID != nil {
			result.ExpensesCreated++
		}
	}

	return result, nil
}

// processMessage classifies and extracts one mail and records it as
// processed. Returns the created expense id, if any, and whether the
// classifier kept the mail.
func (s *Syncer) processMessage(config *domain.MailboxConfig, message *domain.RawMessage) (*int64, bool, error) {
	classification := s.classifier.Classify(message.Sender, message.Subject, message.Body)

	var expenseID *int64
	if classification.Keep {
		id, err := s.extractAndPersist(config, message)
		if err != nil {
			return nil, true, err
		}
		expenseID = id
	} else {
		s.l.WithFields(logrus.Fields{"mailbox": config.Address, "subject": shortSubject(message.Subject), "reason": classification.Reason}).Debug("Dropped mail")
	}

	err := s.persistence.SaveProcessed(domain.ProcessedMessage{
		ConfigID:   config.ID,
		ExternalID: message.ExternalID,
		MessageID:  message.MessageID,
		ExpenseID:  expenseID,
	})
	if err != nil {
		return nil, classification.Keep, err
	}

	return expenseID, classification.Keep, nil
}

// extractAndPersist turns a kept mail into an expense when the candidate
// clears the confidence gate and is not a duplicate. A miss (no amount,
// low score, duplicate) is a silent non-event, not an error.
func (s *Syncer) extractAndPersist(config *domain.MailboxConfig, message *domain.RawMessage) (*int64, error) {
	candidate, ok := s.buildCandidate(config, message)
	if !ok {
		return nil, nil
	}

	duplicate, err := s.persistence.ExpenseExists(config.UserID, candidate.Amount, candidate.Merchant, candidate.OccurredAt)
	if err != nil {
		return nil, fmt.Errorf("could not check for duplicate expense: %w", err)
	}
	if duplicate {
		s.l.WithFields(logrus.Fields{"mailbox": config.Address, "merchant": candidate.Merchant, "amount": candidate.Amount}).Debug("Duplicate expense, skipping")
		return nil, nil
	}

	expenseID, err := s.persistence.SaveExpense(config.UserID, candidate)
	if err != nil {
		return nil, fmt.Errorf("could not save expense: %w", err)
	}

	if s.hook != nil {
		// The hook is a courtesy call; its failures are the collaborator's
		// problem and never unwind the insert.
		s.hook(config.UserID, candidate.Category, candidate.Amount)
	}

	return &expenseID, nil
}

// buildCandidate extracts and scores a candidate. ok is false when no
// amount was found or the score is below the threshold.
func (s *Syncer) buildCandidate(config *domain.MailboxConfig, message *domain.RawMessage) (*domain.ExpenseCandidate, bool) {
	text := message.Subject + "\n" + message.Body

	candidate, ok := s.extractor.Extract(text, message.Sender)
	if !ok {
		return nil, false
	}

	confidence := s.classifier.Score(message.Sender, message.Subject, message.Body, candidate.Amount, candidate.Merchant)
	if confidence < s.configuration.ConfidenceThreshold {
		s.l.WithFields(logrus.Fields{"mailbox": config.Address, "subject": shortSubject(message.Subject), "confidence": confidence}).Debug("Candidate below confidence threshold")
		return nil, false
	}

	candidate.Confidence = confidence
	candidate.Description = describe(message.Subject)
	candidate.OccurredAt = message.ReceivedAt
	candidate.SourceConfigID = config.ID

	return candidate, true
}

func (s *Syncer) filterProcessedUids(configID int64, uids []uint32) ([]uint32, error) {
	if len(uids) == 0 {
		return nil, nil
	}

	externalIDs := make([]string, len(uids))
	byExternalID := make(map[string]uint32, len(uids))
	for i, uid := range uids {
		externalIDs[i] = strconv.FormatUint(uint64(uid), 10)
		byExternalID[externalIDs[i]] = uid
	}

	unprocessed, err := s.persistence.FilterUnprocessed(configID, externalIDs)
	if err != nil {
		return nil, fmt.Errorf("could not filter processed messages: %w", err)
	}

	filtered := make([]uint32, 0, len(unprocessed))
	for _, id := range unprocessed {
		filtered = append(filtered, byExternalID[id])
	}
	return filtered, nil
}

// TestConnection validates mailbox credentials before the collaborator
// commits them: one dial, a bounded fetch, and a dry extraction run.
// Nothing is persisted and no session is cached.
func (s *Syncer) TestConnection(config *domain.MailboxConfig) (*domain.ConnectionTestResult, error) {
	session, err := s.sessions.Open(config)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := session.Close(); err != nil {
			s.l.WithFields(logrus.Fields{"mailbox": config.Address, "error": err}).Debug("Could not close test session")
		}
	}()

	since := time.Now().AddDate(0, 0, -s.configuration.FetchWindowDays)
	uids, err := session.SearchUnseenSince(since)
	if err != nil {
		return nil, &domain.ConnectionError{Addr: config.Address, Op: "search", Err: err}
	}

	if len(uids) > testFetchLimit {
		uids = uids[:testFetchLimit]
	}

	messages, err := session.FetchMessages(uids)
	if err != nil {
		return nil, &domain.ConnectionError{Addr: config.Address, Op: "fetch", Err: err}
	}

	result := &domain.ConnectionTestResult{Success: true}
	for _, message := range messages {
		classification := s.classifier.Classify(message.Sender, message.Subject, message.Body)
		if !classification.Keep {
			continue
		}
		result.EmailsFound++

		candidate, ok := s.buildCandidate(config, message)
		if !ok {
			continue
		}
		result.ExpensesExtracted++
		if len(result.SampleExpenses) < testSampleLimit {
			result.SampleExpenses = append(result.SampleExpenses, candidate)
		}
	}

	return result, nil
}

const descriptionSubjectLimit = 50

func describe(subject string) string {
	if len(subject) > descriptionSubjectLimit {
		return "Email: " + subject[:descriptionSubjectLimit] + "..."
	}
	return "Email: " + subject
}

func shortSubject(subject string) string {
	if len(subject) > 30 {
		return subject[:30] + "..."
	}
	return subject
}
