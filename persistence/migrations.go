// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import migrate "github.com/rubenv/sql-migrate"

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_initial",
			Up: []string{
				`CREATE TABLE mailbox_configs (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id INTEGER NOT NULL,
					email_address TEXT NOT NULL,
					imap_host TEXT NOT NULL,
					imap_port INTEGER NOT NULL,
					username TEXT NOT NULL,
					app_password TEXT NOT NULL,
					is_active BOOLEAN NOT NULL DEFAULT 1,
					last_sync_at TIMESTAMP,
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE TABLE processed_messages (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					config_id INTEGER NOT NULL,
					external_id TEXT NOT NULL,
					message_id TEXT,
					processed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					expense_id INTEGER,
					UNIQUE(config_id, external_id)
				)`,
				`CREATE TABLE expenses (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id INTEGER NOT NULL,
					amount REAL NOT NULL,
					currency TEXT NOT NULL DEFAULT 'INR',
					category TEXT NOT NULL,
					description TEXT,
					merchant TEXT,
					payment_method TEXT,
					gst_amount REAL NOT NULL DEFAULT 0,
					transaction_id TEXT,
					confidence INTEGER NOT NULL DEFAULT 0,
					source TEXT NOT NULL DEFAULT 'email',
					expense_date DATE NOT NULL,
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_expenses_dedup ON expenses (user_id, amount, merchant, expense_date)`,
				`CREATE TABLE budgets (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id INTEGER NOT NULL,
					category TEXT NOT NULL,
					amount REAL NOT NULL,
					period TEXT NOT NULL DEFAULT 'monthly',
					alert_threshold INTEGER NOT NULL DEFAULT 80,
					is_active BOOLEAN NOT NULL DEFAULT 1
				)`,
				`CREATE TABLE notifications (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id INTEGER NOT NULL,
					level TEXT NOT NULL,
					title TEXT NOT NULL,
					message TEXT NOT NULL,
					link TEXT,
					created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
				)`,
			},
			Down: []string{
				`DROP TABLE notifications`,
				`DROP TABLE budgets`,
				`DROP TABLE expenses`,
				`DROP TABLE processed_messages`,
				`DROP TABLE mailbox_configs`,
			},
		},
	},
}
