// SPDX-License-Identifier: GPL-3.0-or-later

// Package budget evaluates a user's budgets after an expense lands and
// writes threshold notifications. It sits behind the pipeline's expense
// hook and never fails the sync cycle.
package budget

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mailspend/mailspend/domain"
	"github.com/mailspend/mailspend/log"
)

const defaultAlertThreshold = 80

type Alerter struct {
	persistence domain.Persistence
	now         func() time.Time

	l *logrus.Logger
}

func NewAlerter(persistence domain.Persistence) *Alerter {
	return &Alerter{
		persistence: persistence,
		now:         time.Now,
		l:           log.Logger(log.LOG_BUDGET),
	}
}

// OnExpensePersisted recomputes period spend for every budget covering the
// expense's category (plus "Overall") and raises a notification when the
// alert threshold or the full budget is crossed. Errors are logged and
// swallowed; the expense insert already happened and stays.
func (a *Alerter) OnExpensePersisted(userID int64, category string, amount float64) {
	budgets, err := a.persistence.ActiveBudgets(userID, category)
	if err != nil {
		a.l.WithFields(logrus.Fields{"user": userID, "error": err}).Warn("Could not load budgets")
		return
	}

	for _, budget := range budgets {
		if budget.Amount <= 0 {
			continue
		}

		spent, err := a.persistence.SumExpensesSince(userID, budget.Category, PeriodStart(budget.Period, a.now()))
		if err != nil {
			a.l.WithFields(logrus.Fields{"user": userID, "budget": budget.Category, "error": err}).Warn("Could not sum expenses")
			continue
		}

		percentage := spent / budget.Amount * 100

		threshold := budget.AlertThreshold
		if threshold <= 0 {
			threshold = defaultAlertThreshold
		}

		var notification domain.Notification
		switch {
		case percentage >= 100:
			notification = domain.Notification{
				UserID:  userID,
				Level:   "danger",
				Title:   fmt.Sprintf("Budget Exceeded: %s", budget.Category),
				Message: fmt.Sprintf("You've spent ₹%.0f of your ₹%.0f %s budget (%.0f%%)", spent, budget.Amount, budget.Category, percentage),
				Link:    "/budgets",
			}
		case percentage >= float64(threshold):
			notification = domain.Notification{
				UserID:  userID,
				Level:   "warning",
				Title:   fmt.Sprintf("Budget Alert: %s", budget.Category),
				Message: fmt.Sprintf("You've spent ₹%.0f of your ₹%.0f %s budget (%.0f%%)", spent, budget.Amount, budget.Category, percentage),
				Link:    "/budgets",
			}
		default:
			continue
		}

		if err := a.persistence.SaveNotification(notification); err != nil {
			a.l.WithFields(logrus.Fields{"user": userID, "error": err}).Warn("Could not save notification")
			continue
		}

		a.l.WithFields(logrus.Fields{"user": userID, "budget": budget.Category, "percentage": percentage}).Info("Raised budget alert")
	}
}

// PeriodStart returns the start of the budget period: the first of the
// current month for monthly budgets, otherwise the start of the Indian
// financial year (April 1st).
func PeriodStart(period string, now time.Time) time.Time {
	if period == "monthly" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}

	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	return time.Date(year, time.April, 1, 0, 0, 0, 0, now.Location())
}
