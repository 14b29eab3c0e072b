// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"fmt"
	"time"
)

// MailboxConfig is one mailbox to sync, owned by the external configuration
// store. The pipeline reads these rows and writes back only LastSyncAt.
type MailboxConfig struct {
	ID          int64
	UserID      int64
	Address     string
	ImapHost    string
	ImapPort    int
	Username    string
	AppPassword string
	Active      bool
	LastSyncAt  *time.Time
}

func (c *MailboxConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ImapHost, c.ImapPort)
}

// RawMessage is one fetched mail, already decoded and capped. Transient,
// never persisted directly.
type RawMessage struct {
	// ExternalID is the IMAP UID rendered as a string. Together with the
	// mailbox config id it forms the idempotency key.
	ExternalID string
	MessageID  string
	Sender     string
	Subject    string
	Body       string
	ReceivedAt time.Time
	RawExcerpt string
}

type ImapSession interface {
	Noop() error
	SearchUnseenSince(since time.Time) ([]uint32, error)
	FetchMessages(uids []uint32) ([]*RawMessage, error)
	Close() error
}

// SessionStore caches at most one live session per mailbox address.
// An entry is owned by exactly one in-flight unit of work at a time; the
// scheduler's per-mailbox guard upholds that.
type SessionStore interface {
	// Acquire returns the cached session for the mailbox after a successful
	// health check, or dials a fresh one.
	Acquire(config *MailboxConfig) (ImapSession, error)
	// Open dials a one-shot session that is not cached. Used for
	// connection testing.
	Open(config *MailboxConfig) (ImapSession, error)
	Evict(address string)
	CloseAll()
}
