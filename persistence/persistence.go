// SPDX-License-Identifier: GPL-3.0-or-later

// Package persistence is the sqlite system of record. Deduplication lives
// here, not in memory, so correctness survives process restarts.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"

	"github.com/mailspend/mailspend/domain"
	"github.com/mailspend/mailspend/log"
)

const dateFormat = "2006-01-02"

type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

func (p *Persistence) ActiveConfigs() ([]*domain.MailboxConfig, error) {
	dbConfigs := []struct {
		ID          int64        `db:"id"`
		UserID      int64        `db:"user_id"`
		Address     string       `db:"email_address"`
		ImapHost    string       `db:"imap_host"`
		ImapPort    int          `db:"imap_port"`
		Username    string       `db:"username"`
		AppPassword string       `db:"app_password"`
		Active      bool         `db:"is_active"`
		LastSyncAt  sql.NullTime `db:"last_sync_at"`
	}{}

	err := p.db.Select(
		&dbConfigs,
		`SELECT id, user_id, email_address, imap_host, imap_port, username, app_password, is_active, last_sync_at
		 FROM mailbox_configs WHERE is_active = 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	configs := []*domain.MailboxConfig{}
	for _, c := range dbConfigs {
		config := &domain.MailboxConfig{
			ID:          c.ID,
			UserID:      c.UserID,
			Address:     c.Address,
			ImapHost:    c.ImapHost,
			ImapPort:    c.ImapPort,
			Username:    c.Username,
			AppPassword: c.AppPassword,
			Active:      c.Active,
		}
		if c.LastSyncAt.Valid {
			lastSync := c.LastSyncAt.Time
			config.LastSyncAt = &lastSync
		}
		configs = append(configs, config)
	}

	p.l.WithField("Count", len(configs)).Debug("Found active mailbox configs")

	return configs, nil
}

// SaveConfig inserts a mailbox configuration. Configuration rows are owned
// by the external collaborator; this is its write path.
func (p *Persistence) SaveConfig(config *domain.MailboxConfig) (int64, error) {
	result, err := p.db.Exec(
		`INSERT INTO mailbox_configs (user_id, email_address, imap_host, imap_port, username, app_password, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		config.UserID, config.Address, config.ImapHost, config.ImapPort, config.Username, config.AppPassword, config.Active,
	)
	if err != nil {
		return 0, fmt.Errorf("could not save mailbox config: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get config id: %w", err)
	}
	return id, nil
}

func (p *Persistence) UpdateLastSync(configID int64, at time.Time) error {
	result, err := p.db.Exec(
		"UPDATE mailbox_configs SET last_sync_at = ? WHERE id = ?",
		at, configID,
	)
	if err != nil {
		return fmt.Errorf("could not update last sync: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get num of affected rows: %w", err)
	}

	if affected != 1 {
		return fmt.Errorf("unexpected number of affected rows, expected 1 got %d", affected)
	}

	return nil
}

func (p *Persistence) FilterUnprocessed(configID int64, externalIDs []string) ([]string, error) {
	if len(externalIDs) == 0 {
		return nil, nil
	}

	qry, args, err := sqlx.Named(
		"SELECT external_id FROM processed_messages WHERE config_id = :config AND external_id IN (:ids)",
		map[string]interface{}{
			"config": configID,
			"ids":    externalIDs,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("could not create query: %w", err)
	}

	qry, args, err = sqlx.In(qry, args...)
	if err != nil {
		return nil, fmt.Errorf("could not replace IN in query: %w", err)
	}

	processed := []string{}
	err = p.db.Select(&processed, qry, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	seen := map[string]bool{}
	for _, id := range processed {
		seen[id] = true
	}

	unprocessed := []string{}
	for _, id := range externalIDs {
		if !seen[id] {
			unprocessed = append(unprocessed, id)
		}
	}

	return unprocessed, nil
}

func (p *Persistence) SaveProcessed(msg domain.ProcessedMessage) error {
	processedAt := msg.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	_, err := p.db.Exec(
		"INSERT INTO processed_messages (config_id, external_id, message_id, processed_at, expense_id) VALUES (?, ?, ?, ?, ?)",
		msg.ConfigID, msg.ExternalID, msg.MessageID, processedAt, msg.ExpenseID,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrAlreadyProcessed
		}
		return fmt.Errorf("could not save processed message: %w", err)
	}

	return nil
}

func (p *Persistence) ExpenseExists(userID int64, amount float64, merchant string, date time.Time) (bool, error) {
	var id int64
	err := p.db.Get(
		&id,
		"SELECT id FROM expenses WHERE user_id = ? AND amount = ? AND merchant = ? AND expense_date = ?",
		userID, amount, merchant, date.Format(dateFormat),
	)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not query db: %w", err)
	}

	return true, nil
}

func (p *Persistence) SaveExpense(userID int64, candidate *domain.ExpenseCandidate) (int64, error) {
	result, err := p.db.Exec(
		`INSERT INTO expenses
		 (user_id, amount, currency, category, description, merchant, payment_method, gst_amount, transaction_id, confidence, source, expense_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID,
		candidate.Amount,
		candidate.Currency,
		candidate.Category,
		candidate.Description,
		candidate.Merchant,
		candidate.PaymentMethod,
		candidate.GSTAmount,
		candidate.TransactionID,
		candidate.Confidence,
		"email",
		candidate.OccurredAt.Format(dateFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("could not save expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get expense id: %w", err)
	}

	p.l.WithFields(logrus.Fields{"Amount": candidate.Amount, "Merchant": candidate.Merchant, "Confidence": candidate.Confidence}).Info("Persisted expense")
	return id, nil
}

func (p *Persistence) ActiveBudgets(userID int64, category string) ([]*domain.Budget, error) {
	dbBudgets := []struct {
		ID             int64   `db:"id"`
		UserID         int64   `db:"user_id"`
		Category       string  `db:"category"`
		Amount         float64 `db:"amount"`
		Period         string  `db:"period"`
		AlertThreshold int     `db:"alert_threshold"`
	}{}

	err := p.db.Select(
		&dbBudgets,
		`SELECT id, user_id, category, amount, period, alert_threshold
		 FROM budgets WHERE user_id = ? AND is_active = 1 AND (category = ? OR category = 'Overall')`,
		userID, category,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	budgets := []*domain.Budget{}
	for _, b := range dbBudgets {
		budgets = append(budgets, &domain.Budget{
			ID:             b.ID,
			UserID:         b.UserID,
			Category:       b.Category,
			Amount:         b.Amount,
			Period:         b.Period,
			AlertThreshold: b.AlertThreshold,
		})
	}

	return budgets, nil
}

// SumExpensesSince totals a user's expenses since the given date. The
// special category "Overall" sums across all categories.
func (p *Persistence) SumExpensesSince(userID int64, category string, since time.Time) (float64, error) {
	var total float64
	var err error

	if category == "Overall" {
		err = p.db.Get(
			&total,
			"SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = ? AND expense_date >= ?",
			userID, since.Format(dateFormat),
		)
	} else {
		err = p.db.Get(
			&total,
			"SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = ? AND category = ? AND expense_date >= ?",
			userID, category, since.Format(dateFormat),
		)
	}

	if err != nil {
		return 0, fmt.Errorf("could not query db: %w", err)
	}

	return total, nil
}

func (p *Persistence) SaveNotification(n domain.Notification) error {
	_, err := p.db.Exec(
		"INSERT INTO notifications (user_id, level, title, message, link) VALUES (?, ?, ?, ?, ?)",
		n.UserID, n.Level, n.Title, n.Message, n.Link,
	)
	if err != nil {
		return fmt.Errorf("could not save notification: %w", err)
	}

	return nil
}

// SaveBudget inserts a budget row. Budget rows are owned by the external
// collaborator; this is its write path.
func (p *Persistence) SaveBudget(budget *domain.Budget) (int64, error) {
	result, err := p.db.Exec(
		"INSERT INTO budgets (user_id, category, amount, period, alert_threshold, is_active) VALUES (?, ?, ?, ?, ?, 1)",
		budget.UserID, budget.Category, budget.Amount, budget.Period, budget.AlertThreshold,
	)
	if err != nil {
		return 0, fmt.Errorf("could not save budget: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get budget id: %w", err)
	}
	return id, nil
}
