// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

// ExpenseCandidate is an extracted, not-yet-persisted expense awaiting the
// confidence gate and the duplicate check.
type ExpenseCandidate struct {
	Amount         float64
	Currency       string
	Merchant       string
	Category       string
	PaymentMethod  string
	GSTAmount      float64
	TransactionID  string
	Confidence     int
	Description    string
	OccurredAt     time.Time
	SourceConfigID int64
}

// ProcessedMessage records that a fetched mail was handled, whatever the
// classification outcome. (ConfigID, ExternalID) is unique; re-running a
// cycle over the same messages is a no-op.
type ProcessedMessage struct {
	ConfigID    int64
	ExternalID  string
	MessageID   string
	ProcessedAt time.Time
	ExpenseID   *int64
}

type SyncResult struct {
	EmailsFetched   int
	EmailsAccepted  int
	ExpensesCreated int
}

type SchedulerStatus struct {
	Running         bool
	CycleInProgress bool
	LastCycleAt     *time.Time
}

type ConnectionTestResult struct {
	Success           bool
	EmailsFound       int
	ExpensesExtracted int
	SampleExpenses    []*ExpenseCandidate
}

// ExpenseHook is invoked after a candidate has been persisted as an expense.
// Implementations must not fail the sync cycle; errors stay on their side.
type ExpenseHook func(userID int64, category string, amount float64)
