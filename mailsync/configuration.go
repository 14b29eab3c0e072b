// SPDX-License-Identifier: GPL-3.0-or-later
package mailsync

import (
	"fmt"
	"time"
)

const (
	DefaultSyncInterval        = 60 * time.Second
	DefaultErrorCooldown       = 30 * time.Second
	DefaultFetchWindowDays     = 2
	DefaultFetchLimit          = 10
	DefaultMaxConcurrent       = 4
	DefaultConfidenceThreshold = 35
	DefaultShutdownTimeout     = 3 * time.Second

	// oversampleFactor is how many more mails are fetched than the fetch
	// limit asks for, to compensate for in-flight spam filtering.
	oversampleFactor = 3

	// testFetchLimit bounds the connection-test fetch.
	testFetchLimit  = 5
	testSampleLimit = 3
)

type ConfigFunc func(c *configuration) error

func SyncInterval(interval time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if interval <= 0 {
			return fmt.Errorf("SyncInterval must be positive")
		}

		c.SyncInterval = interval
		return nil
	}
}

func ErrorCooldown(cooldown time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if cooldown <= 0 {
			return fmt.Errorf("ErrorCooldown must be positive")
		}

		c.ErrorCooldown = cooldown
		return nil
	}
}

func FetchWindow(days int) ConfigFunc {
	return func(c *configuration) error {
		if days < 1 {
			return fmt.Errorf("FetchWindow must be at least one day")
		}

		c.FetchWindowDays = days
		return nil
	}
}

func FetchLimit(limit int) ConfigFunc {
	return func(c *configuration) error {
		if limit < 1 {
			return fmt.Errorf("FetchLimit must be at least 1")
		}

		c.FetchLimit = limit
		return nil
	}
}

func MaxConcurrent(concurrency int) ConfigFunc {
	return func(c *configuration) error {
		if concurrency < 1 {
			return fmt.Errorf("MaxConcurrent must be at least 1")
		}

		c.MaxConcurrent = concurrency
		return nil
	}
}

// ConfidenceThreshold sets the minimum score an extracted candidate needs
// to become an expense. The threshold is policy, not law; users tune it.
func ConfidenceThreshold(threshold int) ConfigFunc {
	return func(c *configuration) error {
		if threshold < 0 || threshold > 100 {
			return fmt.Errorf("ConfidenceThreshold must be between 0 and 100")
		}

		c.ConfidenceThreshold = threshold
		return nil
	}
}

func ShutdownTimeout(timeout time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if timeout <= 0 {
			return fmt.Errorf("ShutdownTimeout must be positive")
		}

		c.ShutdownTimeout = timeout
		return nil
	}
}

type configuration struct {
	SyncInterval  time.Duration
	ErrorCooldown time.Duration

	FetchWindowDays int
	FetchLimit      int

	MaxConcurrent int

	ConfidenceThreshold int

	ShutdownTimeout time.Duration
}

func defaultConfiguration() *configuration {
	return &configuration{
		SyncInterval:        DefaultSyncInterval,
		ErrorCooldown:       DefaultErrorCooldown,
		FetchWindowDays:     DefaultFetchWindowDays,
		FetchLimit:          DefaultFetchLimit,
		MaxConcurrent:       DefaultMaxConcurrent,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		ShutdownTimeout:     DefaultShutdownTimeout,
	}
}
