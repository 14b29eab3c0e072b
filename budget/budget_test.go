// SPDX-License-Identifier: GPL-3.0-or-later
package budget

import (
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/mailspend/mailspend/domain"
	"github.com/mailspend/mailspend/domain/mocks"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func setupAlerter(t *testing.T) (*gomock.Controller, *Alerter, *mocks.MockPersistence) {
	ctrl := gomock.NewController(t)
	persistence := mocks.NewMockPersistence(ctrl)

	alerter := &Alerter{
		persistence: persistence,
		now:         func() time.Time { return testNow },
		l:           nullLogger(),
	}

	return ctrl, alerter, persistence
}

func TestOnExpensePersisted(t *testing.T) {
	tests := []struct {
		name          string
		budget        domain.Budget
		spent         float64
		expectedLevel string
		expectNothing bool
	}{
		{
			"below_threshold",
			domain.Budget{UserID: 5, Category: "Food Delivery", Amount: 3000, Period: "monthly", AlertThreshold: 80},
			1500, "", true,
		},
		{
			"warning",
			domain.Budget{UserID: 5, Category: "Food Delivery", Amount: 3000, Period: "monthly", AlertThreshold: 80},
			2550, "warning", false,
		},
		{
			"danger",
			domain.Budget{UserID: 5, Category: "Food Delivery", Amount: 3000, Period: "monthly", AlertThreshold: 80},
			3200, "danger", false,
		},
		{
			"default_threshold",
			domain.Budget{UserID: 5, Category: "Food Delivery", Amount: 1000, Period: "monthly"},
			850, "warning", false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, alerter, persistence := setupAlerter(t)
			defer ctrl.Finish()

			budget := tc.budget
			persistence.EXPECT().
				ActiveBudgets(int64(5), "Food Delivery").
				Return([]*domain.Budget{&budget}, nil)

			periodStart := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
			persistence.EXPECT().
				SumExpensesSince(int64(5), "Food Delivery", periodStart).
				Return(tc.spent, nil)

			if !tc.expectNothing {
				persistence.EXPECT().
					SaveNotification(gomock.Any()).
					DoAndReturn(func(n domain.Notification) error {
						assert.Equal(t, int64(5), n.UserID)
						assert.Equal(t, tc.expectedLevel, n.Level)
						assert.Contains(t, n.Title, "Food Delivery")
						assert.Equal(t, "/budgets", n.Link)
						return nil
					})
			}

			alerter.OnExpensePersisted(5, "Food Delivery", 450)
		})
	}
}

func TestOnExpensePersistedOverallBudget(t *testing.T) {
	ctrl, alerter, persistence := setupAlerter(t)
	defer ctrl.Finish()

	persistence.EXPECT().
		ActiveBudgets(int64(5), "Entertainment").
		Return([]*domain.Budget{
			{UserID: 5, Category: "Overall", Amount: 10000, Period: "yearly", AlertThreshold: 80},
		}, nil)

	fyStart := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	persistence.EXPECT().
		SumExpensesSince(int64(5), "Overall", fyStart).
		Return(9000.0, nil)

	persistence.EXPECT().
		SaveNotification(gomock.Any()).
		DoAndReturn(func(n domain.Notification) error {
			assert.Equal(t, "warning", n.Level)
			assert.Contains(t, n.Title, "Overall")
			return nil
		})

	alerter.OnExpensePersisted(5, "Entertainment", 450)
}

// Alerting failures are logged and swallowed; the expense stays.
func TestOnExpensePersistedSwallowsErrors(t *testing.T) {
	ctrl, alerter, persistence := setupAlerter(t)
	defer ctrl.Finish()

	persistence.EXPECT().
		ActiveBudgets(int64(5), "Food Delivery").
		Return(nil, assert.AnError)

	alerter.OnExpensePersisted(5, "Food Delivery", 450)
}

func TestOnExpensePersistedSkipsZeroBudget(t *testing.T) {
	ctrl, alerter, persistence := setupAlerter(t)
	defer ctrl.Finish()

	persistence.EXPECT().
		ActiveBudgets(int64(5), "Food Delivery").
		Return([]*domain.Budget{
			{UserID: 5, Category: "Food Delivery", Amount: 0, Period: "monthly"},
		}, nil)

	alerter.OnExpensePersisted(5, "Food Delivery", 450)
}

func TestPeriodStart(t *testing.T) {
	tests := []struct {
		name     string
		period   string
		now      time.Time
		expected time.Time
	}{
		{
			"monthly",
			"monthly",
			time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"yearly_after_april",
			"yearly",
			time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC),
			time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"yearly_before_april",
			"yearly",
			time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC),
			time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"yearly_on_april_first",
			"yearly",
			time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PeriodStart(tc.period, tc.now))
		})
	}
}

func nullLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
