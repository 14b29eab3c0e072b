// SPDX-License-Identifier: GPL-3.0-or-later
package mailsync

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mailspend/mailspend/domain"
	"github.com/mailspend/mailspend/log"
)

func TestNewSyncer(t *testing.T) {
	log.InitLogging("error")
	tests := []struct {
		name string
		cfgs []ConfigFunc
		err  string
	}{
		{"ok", []ConfigFunc{}, ""},
		{"options", []ConfigFunc{FetchLimit(5), ConfidenceThreshold(50)}, ""},
		{"err", []ConfigFunc{FetchLimit(0)}, "error applying configuration: FetchLimit must be at least 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			syncer, err := NewSyncer(nil, nil, nil, nil, nil, tc.cfgs...)
			if len(tc.err) == 0 {
				assert.NotNil(t, syncer)
				assert.NoError(t, err)
			} else {
				assert.Nil(t, syncer)
				assert.EqualError(t, err, tc.err)
			}
		})
	}
}

func TestSyncer_StartStop(t *testing.T) {
	ctrl, syncer, persistence, sessions, _, _ := setupSyncer(t)
	defer ctrl.Finish()

	persistence.EXPECT().ActiveConfigs().Return([]*domain.MailboxConfig{}, nil).AnyTimes()
	sessions.EXPECT().CloseAll()

	assert.False(t, syncer.Status().Running)

	syncer.Start()
	assert.True(t, syncer.Status().Running)

	// A second Start is a no-op.
	syncer.Start()
	assert.True(t, syncer.Status().Running)

	syncer.Stop()
	assert.False(t, syncer.Status().Running)

	// Stopping again is a no-op as well.
	syncer.Stop()
}

func TestSyncer_RunCycle(t *testing.T) {
	ctrl, syncer, persistence, sessions, session, _ := setupSyncer(t)
	defer ctrl.Finish()

	first := testConfig()
	second := testConfig()
	second.ID = 4
	second.Address = "other@example.com"

	persistence.EXPECT().ActiveConfigs().Return([]*domain.MailboxConfig{first, second}, nil)

	sessions.EXPECT().Acquire(gomock.Any()).Return(session, nil).Times(2)
	session.EXPECT().SearchUnseenSince(gomock.Any()).Return([]uint32{}, nil).Times(2)
	persistence.EXPECT().UpdateLastSync(first.ID, gomock.Any()).Return(nil)
	persistence.EXPECT().UpdateLastSync(second.ID, gomock.Any()).Return(nil)

	err := syncer.runCycle(context.Background())
	assert.NoError(t, err)

	status := syncer.Status()
	assert.False(t, status.CycleInProgress)
	assert.NotNil(t, status.LastCycleAt)
	assert.Empty(t, syncer.inflight)
}

func TestSyncer_RunCycleSkipsBusyMailbox(t *testing.T) {
	ctrl, syncer, persistence, _, _, _ := setupSyncer(t)
	defer ctrl.Finish()

	config := testConfig()
	persistence.EXPECT().ActiveConfigs().Return([]*domain.MailboxConfig{config}, nil)

	// A manual sync holds the mailbox; the cycle must leave it alone.
	assert.True(t, syncer.tryAcquireMailbox(config.ID))
	defer syncer.releaseMailbox(config.ID)

	err := syncer.runCycle(context.Background())
	assert.NoError(t, err)
}

func TestSyncer_RunCycleContainsMailboxFailure(t *testing.T) {
	ctrl, syncer, persistence, sessions, _, _ := setupSyncer(t)
	defer ctrl.Finish()

	config := testConfig()
	persistence.EXPECT().ActiveConfigs().Return([]*domain.MailboxConfig{config}, nil)
	sessions.EXPECT().Acquire(gomock.Any()).Return(nil, &domain.ConnectionError{Addr: config.Address, Op: "dial"})

	// An unreachable mailbox never fails the cycle.
	err := syncer.runCycle(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, syncer.inflight)
}

func TestSyncer_SyncNow(t *testing.T) {
	ctrl, syncer, persistence, sessions, session, _ := setupSyncer(t)
	defer ctrl.Finish()

	config := testConfig()

	sessions.EXPECT().Acquire(gomock.Eq(config)).Return(session, nil)
	session.EXPECT().SearchUnseenSince(gomock.Any()).Return([]uint32{}, nil)
	persistence.EXPECT().UpdateLastSync(config.ID, gomock.Any()).Return(nil)

	result, err := syncer.SyncNow(context.Background(), config)
	assert.NoError(t, err)
	assert.Equal(t, &domain.SyncResult{}, result)
	assert.Empty(t, syncer.inflight)
}

func TestSyncer_SyncNowBusy(t *testing.T) {
	ctrl, syncer, _, _, _, _ := setupSyncer(t)
	defer ctrl.Finish()

	config := testConfig()
	assert.True(t, syncer.tryAcquireMailbox(config.ID))

	_, err := syncer.SyncNow(context.Background(), config)
	assert.ErrorIs(t, err, domain.ErrMailboxBusy)
}

func TestSyncer_StopWithinTimeout(t *testing.T) {
	ctrl, syncer, persistence, sessions, _, _ := setupSyncer(t)
	defer ctrl.Finish()

	persistence.EXPECT().ActiveConfigs().Return([]*domain.MailboxConfig{}, nil).AnyTimes()
	sessions.EXPECT().CloseAll()

	syncer.Start()

	start := time.Now()
	syncer.Stop()
	assert.Less(t, time.Since(start), syncer.configuration.ShutdownTimeout)
}
