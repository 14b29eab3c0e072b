// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database string

	SyncIntervalSeconds  int
	ErrorCooldownSeconds int

	FetchWindowDays int
	FetchLimit      int

	MaxConcurrentMailboxes int

	ConfidenceThreshold int

	ShutdownTimeoutSeconds int

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:               "mailspend.db",
		SyncIntervalSeconds:    60,
		ErrorCooldownSeconds:   30,
		FetchWindowDays:        2,
		FetchLimit:             10,
		MaxConcurrentMailboxes: 4,
		ConfidenceThreshold:    35,
		ShutdownTimeoutSeconds: 3,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	if c.SyncIntervalSeconds < 1 {
		return fmt.Errorf("SyncIntervalSeconds must be at least 1")
	}

	if c.ErrorCooldownSeconds < 1 {
		return fmt.Errorf("ErrorCooldownSeconds must be at least 1")
	}

	if c.FetchWindowDays < 1 {
		return fmt.Errorf("FetchWindowDays must be at least 1")
	}

	if c.FetchLimit < 1 {
		return fmt.Errorf("FetchLimit must be at least 1")
	}

	if c.MaxConcurrentMailboxes < 1 {
		return fmt.Errorf("MaxConcurrentMailboxes must be at least 1")
	}

	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 100 {
		return fmt.Errorf("ConfidenceThreshold must be between 0 and 100")
	}

	if c.ShutdownTimeoutSeconds < 1 {
		return fmt.Errorf("ShutdownTimeoutSeconds must be at least 1")
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
