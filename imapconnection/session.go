// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/avast/retry-go"
	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"

	"github.com/mailspend/mailspend/domain"
	"github.com/mailspend/mailspend/log"
	"github.com/mailspend/mailspend/mail"
)

const (
	dialAttempts = 3
	dialDelay    = 2 * time.Second
)

// Session is one live IMAP connection to a mailbox, with INBOX selected.
// A session must only ever be used by one unit of work at a time.
type Session struct {
	connection *client.Client

	address  string
	username string
	password string

	lastUsed time.Time

	l *logrus.Logger
}

// Dial connects, logs in and selects INBOX. Transient dial failures are
// retried a few times before the whole attempt is surfaced as a
// ConnectionError.
func Dial(serverAddr, address, username, password string) (*Session, error) {
	var imapClient *client.Client
	err := retry.Do(
		func() error {
			var dialErr error
			imapClient, dialErr = client.DialTLS(serverAddr, nil)
			return dialErr
		},
		retry.Attempts(dialAttempts),
		retry.Delay(dialDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, &domain.ConnectionError{Addr: serverAddr, Op: "dial", Err: err}
	}

	if err := imapClient.Login(username, password); err != nil {
		_ = imapClient.Logout()
		return nil, &domain.ConnectionError{Addr: serverAddr, Op: "login", Err: err}
	}

	if _, err := imapClient.Select("INBOX", false); err != nil {
		_ = imapClient.Logout()
		return nil, &domain.ConnectionError{Addr: serverAddr, Op: "select", Err: err}
	}

	session := &Session{
		connection: imapClient,
		address:    address,
		username:   username,
		password:   password,
		lastUsed:   time.Now(),
		l:          log.Logger(log.LOG_IMAP),
	}

	session.l.WithFields(logrus.Fields{"server": serverAddr, "mailbox": address}).Debug("Logged in to server")
	return session, nil
}

// Noop is the cheap health check issued before a cached session is reused.
func (s *Session) Noop() error {
	if err := s.connection.Noop(); err != nil {
		return fmt.Errorf("noop failed: %w", err)
	}
	s.lastUsed = time.Now()
	return nil
}

// SearchUnseenSince lists the UIDs of unread mails received within the
// window, in server-returned order.
func (s *Session) SearchUnseenSince(since time.Time) ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	criteria.Since = since

	uids, err := s.connection.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search unseen mails: %w", err)
	}

	s.lastUsed = time.Now()
	return uids, nil
}

// FetchMessages fetches and parses the given UIDs with BODY.PEEK so the
// unread flag survives. A message that fails to parse is logged and
// skipped; the rest of the batch goes through.
func (s *Session) FetchMessages(uids []uint32) ([]*domain.RawMessage, error) {
	if len(uids) == 0 {
		return nil, nil
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	section := &imap.BodySectionName{Peek: true}
	fetchItems := []imap.FetchItem{imap.FetchUid, section.FetchItem()}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- s.connection.UidFetch(seqset, fetchItems, messages)
	}()

	results := []*domain.RawMessage{}
	for msg := range messages {
		externalID := strconv.FormatUint(uint64(msg.Uid), 10)

		reader := msg.GetBody(section)
		if reader == nil {
			s.l.WithFields(logrus.Fields{"mailbox": s.address, "uid": msg.Uid}).Warn("Fetched mail has no body section, skipping")
			continue
		}

		raw, err := io.ReadAll(reader)
		if err != nil {
			s.l.WithFields(logrus.Fields{"mailbox": s.address, "uid": msg.Uid, "error": err}).Warn("Could not read mail body, skipping")
			continue
		}

		parsed, err := mail.Parse(externalID, raw)
		if err != nil {
			parseErr := &domain.ParseError{ExternalID: externalID, Err: err}
			s.l.WithFields(logrus.Fields{"mailbox": s.address, "error": parseErr}).Warn("Could not parse mail, skipping")
			continue
		}

		results = append(results, parsed)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("could not fetch mails: %w", err)
	}

	s.lastUsed = time.Now()
	return results, nil
}

func (s *Session) Close() error {
	return s.connection.Logout()
}
