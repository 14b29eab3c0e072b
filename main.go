// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mailspend/mailspend/budget"
	"github.com/mailspend/mailspend/classifier"
	"github.com/mailspend/mailspend/config"
	"github.com/mailspend/mailspend/extractor"
	"github.com/mailspend/mailspend/imapconnection"
	"github.com/mailspend/mailspend/log"
	"github.com/mailspend/mailspend/mailsync"
	"github.com/mailspend/mailspend/persistence"
	"github.com/mailspend/mailspend/rules"
)

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig("config.toml")
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	sessions := imapconnection.NewStore()

	ruleSet := rules.Default()
	cls := classifier.New(ruleSet)
	ext := extractor.New(ruleSet)

	alerter := budget.NewAlerter(p)

	syncer, err := mailsync.NewSyncer(
		p,
		sessions,
		cls,
		ext,
		alerter.OnExpensePersisted,
		mailsync.SyncInterval(time.Duration(conf.SyncIntervalSeconds)*time.Second),
		mailsync.ErrorCooldown(time.Duration(conf.ErrorCooldownSeconds)*time.Second),
		mailsync.FetchWindow(conf.FetchWindowDays),
		mailsync.FetchLimit(conf.FetchLimit),
		mailsync.MaxConcurrent(conf.MaxConcurrentMailboxes),
		mailsync.ConfidenceThreshold(conf.ConfidenceThreshold),
		mailsync.ShutdownTimeout(time.Duration(conf.ShutdownTimeoutSeconds)*time.Second),
	)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start mail syncer")
	}

	syncer.Start()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals

	logger.WithField("signal", sig).Info("Shutting down")
	syncer.Stop()
}
