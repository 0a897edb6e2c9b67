// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the rentweb to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory
// items) and a series of functional options (for the optional items),
// so they may be validated again in the relevant end-component such as
// a UseCase instance.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is implemented with
// primitive fields or other structs which are defined locally, not
// models or structs which are defined in lower layers, so the file
// format can be kept intact while other layers change freely.
type Config struct {
	Database Database // Database driver and connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Logging  Logging  // Default structured logger settings
	Usecases Usecases // Supported use cases configuration settings
}

// Load function loads, validates, and normalizes the configuration
// file which is stored at path and returns its settings as an instance
// of the Config struct.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return c, nil
}

// Parse unmarshals the data byte slice and loads a Config instance.
// Extra items in the data are ignored and missing items take their
// default values. Thereafter, loaded Config will be validated and
// normalized in order to ensure that provided settings are acceptable.
//
// If some settings should be overridden by environment variables,
// this method is the proper place for that replacement.
func Parse(data []byte) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	c.overrideFromEnv()
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// These environment variables (possibly loaded from a .env file) take
// precedence over their corresponding configuration file items.
const (
	EnvDatabaseHost = "RENTWEB_DATABASE_HOST"
	EnvDatabaseName = "RENTWEB_DATABASE_NAME"
	EnvGinAddress   = "RENTWEB_GIN_ADDRESS"
	EnvLogLevel     = "RENTWEB_LOG_LEVEL"
)

func (c *Config) overrideFromEnv() {
	for env, dst := range map[string]*string{
		EnvDatabaseHost: &c.Database.Host,
		EnvDatabaseName: &c.Database.Name,
		EnvGinAddress:   &c.Gin.Address,
		EnvLogLevel:     &c.Logging.Level,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*dst = v
		}
	}
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	if err := c.Gin.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating gin settings: %w", err)
	}
	if err := c.Logging.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating logging settings: %w", err)
	}
	if err := c.Usecases.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating use cases settings: %w", err)
	}
	return nil
}
