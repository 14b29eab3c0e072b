// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"errors"
	"fmt"
)

// ErrAlreadyProcessed marks a ProcessedMessage insert that hit the
// (configID, externalID) uniqueness key. Not a failure.
var ErrAlreadyProcessed = errors.New("message already processed")

// ErrMailboxBusy is returned for a manual sync while a cycle already holds
// the mailbox.
var ErrMailboxBusy = errors.New("mailbox sync already in progress")

// ConnectionError is an auth or network failure opening or using a session.
// The session is evicted and the mailbox is skipped until the next cycle.
type ConnectionError struct {
	Addr string
	Op   string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("imap %s failed for %s: %v", e.Op, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ParseError is a single malformed message. The message is skipped and the
// cycle continues.
type ParseError struct {
	ExternalID string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse message %s: %v", e.ExternalID, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
