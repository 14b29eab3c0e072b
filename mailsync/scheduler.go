// SPDX-License-Identifier: GPL-3.0-or-later

// Package mailsync is the sync core: the periodic scheduler driving one
// cycle over all active mailboxes, and the per-mailbox pipeline that turns
// unread mail into expenses.
package mailsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mailspend/mailspend/classifier"
	"github.com/mailspend/mailspend/domain"
	"github.com/mailspend/mailspend/extractor"
	"github.com/mailspend/mailspend/log"
)

// Syncer owns the background sync loop. Mailboxes are independent: a cycle
// fans out across them up to MaxConcurrent, and a per-mailbox guard keeps
// any single mailbox down to one in-flight unit of work, shared between the
// periodic loop and manual syncs.
type Syncer struct {
	persistence domain.Persistence
	sessions    domain.SessionStore
	classifier  *classifier.Classifier
	extractor   *extractor.Extractor
	hook        domain.ExpenseHook

	configuration *configuration

	mu              sync.Mutex
	running         bool
	cycleInProgress bool
	lastCycleAt     *time.Time
	inflight        map[int64]bool
	cancel          context.CancelFunc
	done            chan struct{}

	l *logrus.Logger
}

func NewSyncer(persistence domain.Persistence, sessions domain.SessionStore, cls *classifier.Classifier, ext *extractor.Extractor, hook domain.ExpenseHook, configFunc ...ConfigFunc) (*Syncer, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Syncer{
		persistence:   persistence,
		sessions:      sessions,
		classifier:    cls,
		extractor:     ext,
		hook:          hook,
		configuration: config,
		inflight:      make(map[int64]bool),
		l:             log.Logger(log.LOG_SYNC),
	}, nil
}

// Start launches the periodic loop. Idempotent; calling it on a running
// syncer does nothing.
func (s *Syncer) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	s.l.WithField("interval", s.configuration.SyncInterval).Info("Sync scheduler started")
	go s.loop(ctx, done)
}

// Stop cancels the loop (including the sleep between cycles), closes all
// cached sessions and waits for the loop to exit, bounded by the shutdown
// timeout. Idempotent and safe to call from a signal handler.
func (s *Syncer) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	s.l.Info("Stopping sync scheduler")
	cancel()
	s.sessions.CloseAll()

	select {
	case <-done:
		s.l.Info("Sync scheduler stopped")
	case <-time.After(s.configuration.ShutdownTimeout):
		s.l.Warn("Sync loop did not stop within timeout")
	}
}

// Status reports scheduler health for monitoring queries.
func (s *Syncer) Status() domain.SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := domain.SchedulerStatus{
		Running:         s.running,
		CycleInProgress: s.cycleInProgress,
	}
	if s.lastCycleAt != nil {
		at := *s.lastCycleAt
		status.LastCycleAt = &at
	}
	return status
}

// SyncNow runs the unit of work for one mailbox outside the periodic gate,
// e.g. right after the collaborator added the config. The per-mailbox
// guard still applies: ErrMailboxBusy when a cycle holds the mailbox.
func (s *Syncer) SyncNow(ctx context.Context, config *domain.MailboxConfig) (*domain.SyncResult, error) {
	if !s.tryAcquireMailbox(config.ID) {
		return nil, domain.ErrMailboxBusy
	}
	defer s.releaseMailbox(config.ID)

	result, err := s.SyncMailbox(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := s.persistence.UpdateLastSync(config.ID, time.Now()); err != nil {
		s.l.WithFields(logrus.Fields{"mailbox": config.Address, "error": err}).Warn("Could not update last sync time")
	}

	return result, nil
}

func (s *Syncer) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		wait := s.configuration.SyncInterval
		if err := s.runCycle(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			// Bounded backoff rather than a tight retry loop.
			s.l.WithField("error", err).Error("Sync cycle failed, cooling down")
			wait = s.configuration.ErrorCooldown
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// runCycle runs one pass over all active mailbox configs. Per-mailbox
// failures are contained inside syncOne; an error return here means the
// cycle itself could not run.
func (s *Syncer) runCycle(ctx context.Context) error {
	s.mu.Lock()
	if s.cycleInProgress {
		s.mu.Unlock()
		return nil
	}
	s.cycleInProgress = true
	s.mu.Unlock()

	defer func() {
		now := time.Now()
		s.mu.Lock()
		s.cycleInProgress = false
		s.lastCycleAt = &now
		s.mu.Unlock()
	}()

	configs, err := s.persistence.ActiveConfigs()
	if err != nil {
		return fmt.Errorf("could not list active mailbox configs: %w", err)
	}

	if len(configs) == 0 {
		return nil
	}

	s.l.WithField("mailboxes", len(configs)).Debug("Starting sync cycle")
	start := time.Now()

	group := &errgroup.Group{}
	group.SetLimit(s.configuration.MaxConcurrent)

	for _, config := range configs {
		config := config
		if !s.tryAcquireMailbox(config.ID) {
			// A manual sync holds the mailbox; it will be current anyway.
			continue
		}

		group.Go(func() error {
			defer s.releaseMailbox(config.ID)
			s.syncOne(ctx, config)
			return nil
		})
	}

	_ = group.Wait()
	s.l.WithFields(logrus.Fields{"mailboxes": len(configs), "duration": time.Since(start)}).Debug("Finished sync cycle")

	return ctx.Err()
}

// syncOne runs one mailbox's unit of work and contains its failures:
// connection problems skip the mailbox until the next cycle, anything else
// is logged as a cycle error for this mailbox alone. LastSyncAt moves only
// after the unit of work completed.
func (s *Syncer) syncOne(ctx context.Context, config *domain.MailboxConfig) {
	result, err := s.SyncMailbox(ctx, config)
	if err != nil {
		var connErr *domain.ConnectionError
		if errors.As(err, &connErr) {
			s.l.WithFields(logrus.Fields{"mailbox": config.Address, "error": connErr}).Warn("Mailbox unreachable, retrying next cycle")
		} else if !errors.Is(err, context.Canceled) {
			s.l.WithFields(logrus.Fields{"mailbox": config.Address, "error": err}).Error("Mailbox sync failed")
		}
		return
	}

	if err := s.persistence.UpdateLastSync(config.ID, time.Now()); err != nil {
		s.l.WithFields(logrus.Fields{"mailbox": config.Address, "error": err}).Warn("Could not update last sync time")
	}

	if result.ExpensesCreated > 0 {
		s.l.WithFields(logrus.Fields{"mailbox": config.Address, "fetched": result.EmailsFetched, "accepted": result.EmailsAccepted, "expenses": result.ExpensesCreated}).Info("Synced mailbox")
	} else {
		s.l.WithFields(logrus.Fields{"mailbox": config.Address, "fetched": result.EmailsFetched, "accepted": result.EmailsAccepted}).Debug("Synced mailbox")
	}
}

func (s *Syncer) tryAcquireMailbox(configID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight[configID] {
		return false
	}
	s.inflight[configID] = true
	return true
}

func (s *Syncer) releaseMailbox(configID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, configID)
}
