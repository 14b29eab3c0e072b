// SPDX-License-Identifier: GPL-3.0-or-later

// Package imapconnection owns the live IMAP sessions: dialing, the cheap
// pre-reuse health check, and the per-mailbox session cache.
package imapconnection

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mailspend/mailspend/domain"
	"github.com/mailspend/mailspend/log"
)

// Store caches one session per mailbox address across scheduler cycles to
// avoid reconnect cost. The map is guarded for cross-mailbox concurrency;
// exclusivity of a single entry is the scheduler's per-mailbox guard.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	l *logrus.Logger
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		l:        log.Logger(log.LOG_IMAP),
	}
}

// Acquire returns a healthy cached session for the mailbox or dials a new
// one. A cached session is discarded when the health check fails or the
// credentials changed since it was opened.
func (st *Store) Acquire(config *domain.MailboxConfig) (domain.ImapSession, error) {
	st.mu.Lock()
	cached := st.sessions[config.Address]
	st.mu.Unlock()

	if cached != nil {
		if cached.username == config.Username && cached.password == config.AppPassword {
			if err := cached.Noop(); err == nil {
				return cached, nil
			}
			st.l.WithFields(logrus.Fields{"mailbox": config.Address}).Info("Cached session failed health check, reconnecting")
		} else {
			st.l.WithFields(logrus.Fields{"mailbox": config.Address}).Info("Mailbox credentials changed, reconnecting")
		}
		st.Evict(config.Address)
	}

	session, err := Dial(config.ServerAddr(), config.Address, config.Username, config.AppPassword)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	st.sessions[config.Address] = session
	st.mu.Unlock()

	return session, nil
}

// Open dials a one-shot session that bypasses the cache. The caller closes
// it.
func (st *Store) Open(config *domain.MailboxConfig) (domain.ImapSession, error) {
	return Dial(config.ServerAddr(), config.Address, config.Username, config.AppPassword)
}

// Evict closes and forgets the cached session for the mailbox, if any.
func (st *Store) Evict(address string) {
	st.mu.Lock()
	session := st.sessions[address]
	delete(st.sessions, address)
	st.mu.Unlock()

	if session != nil {
		if err := session.Close(); err != nil {
			st.l.WithFields(logrus.Fields{"mailbox": address, "error": err}).Debug("Could not close evicted session")
		}
	}
}

// CloseAll logs out every cached session. Called on shutdown.
func (st *Store) CloseAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()

	for address, session := range sessions {
		if err := session.Close(); err != nil {
			st.l.WithFields(logrus.Fields{"mailbox": address, "error": err}).Debug("Could not close session")
		}
	}
}
