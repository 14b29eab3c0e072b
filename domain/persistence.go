// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

type Budget struct {
	ID             int64
	UserID         int64
	Category       string
	Amount         float64
	Period         string
	AlertThreshold int
}

type Notification struct {
	UserID  int64
	Level   string
	Title   string
	Message string
	Link    string
}

type Persistence interface {
	Close() error

	ActiveConfigs() ([]*MailboxConfig, error)
	UpdateLastSync(configID int64, at time.Time) error

	// FilterUnprocessed returns the subset of externalIDs that have no
	// ProcessedMessage for the config yet, preserving input order.
	FilterUnprocessed(configID int64, externalIDs []string) ([]string, error)
	// SaveProcessed returns ErrAlreadyProcessed when the
	// (configID, externalID) key exists.
	SaveProcessed(msg ProcessedMessage) error

	// ExpenseExists reports whether the user already has an expense with the
	// same amount, merchant and date.
	ExpenseExists(userID int64, amount float64, merchant string, date time.Time) (bool, error)
	SaveExpense(userID int64, candidate *ExpenseCandidate) (int64, error)

	ActiveBudgets(userID int64, category string) ([]*Budget, error)
	SumExpensesSince(userID int64, category string, since time.Time) (float64, error)
	SaveNotification(n Notification) error
}
