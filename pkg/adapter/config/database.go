// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/momeni/car-rental/pkg/adapter/config/settings"
	"github.com/momeni/car-rental/pkg/adapter/db/memory"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres/clientsrp"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres/rentalsrp"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/car-rental/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/momeni/car-rental/pkg/core/repo"
)

// These are the supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DefaultConnectTimeout is used when connect-timeout is missing.
const DefaultConnectTimeout = 10 * time.Second

// Database contains the database driver and connection settings.
// The host, port, name, user, and pass-dir items are only used by
// the postgres driver, while the memory driver keeps all entities in
// the process memory and loses them after a restart.
type Database struct {
	Driver  string // postgres or memory, defaults to postgres
	Host    string // domain name or IP address of the DBMS server
	Port    int    // port number of the DBMS server
	Name    string // database name, like rentweb
	User    string // role name for connecting to the database
	PassDir string `yaml:"pass-dir"` // path of the .pgpass file dir

	// ConnectTimeout is the maximum wait time for establishing a
	// new connection to the DBMS server.
	ConnectTimeout *settings.Duration `yaml:"connect-timeout"`
	// MinConnectTimeout is the inclusive minimum acceptable value
	// for the ConnectTimeout setting.
	// A missing value indicates that there is no lower bound.
	MinConnectTimeout *settings.Duration `yaml:"connect-timeout-minimum"`
	// MaxConnectTimeout is the inclusive maximum acceptable value
	// for the ConnectTimeout setting.
	// A missing value indicates that there is no upper bound.
	MaxConnectTimeout *settings.Duration `yaml:"connect-timeout-maximum"`
}

// ValidateAndNormalize validates the database settings, fills the
// missing driver and connect-timeout items, and ensures that the
// connect-timeout is within its boundaries.
func (d *Database) ValidateAndNormalize() error {
	switch d.Driver {
	case "":
		d.Driver = DriverPostgres
		fallthrough
	case DriverPostgres:
		switch {
		case d.Host == "":
			return fmt.Errorf("missing host")
		case d.Port <= 0 || d.Port > 65535:
			return fmt.Errorf("invalid port: %d", d.Port)
		case d.Name == "":
			return fmt.Errorf("missing database name")
		case d.User == "":
			return fmt.Errorf("missing user")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver: %q", d.Driver)
	}
	settings.Default(&d.ConnectTimeout, settings.Duration(DefaultConnectTimeout))
	if err := settings.VerifyRange(
		&d.ConnectTimeout, d.MinConnectTimeout, d.MaxConnectTimeout,
	); err != nil {
		return fmt.Errorf(
			"VerifyRange(connect timeout=%v, minb=%v, maxb=%v): %w",
			err.Value, d.MinConnectTimeout, d.MaxConnectTimeout, err,
		)
	}
	return nil
}

// NewPoolAndRepos creates a connections pool and the repositories
// which can work with its connections, based on the database driver.
func (d Database) NewPoolAndRepos(ctx context.Context) (
	repo.Pool, *repo.Repos, error,
) {
	if d.Driver == DriverMemory {
		return memory.NewPool(), memory.NewRepos(), nil
	}
	path := filepath.Join(d.PassDir, ".pgpass")
	u, err := d.ConnectionURL(path)
	if err != nil {
		return nil, nil, fmt.Errorf("using %q pass-file: %w", path, err)
	}
	p, err := postgres.NewPool(ctx, u)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"connecting to %s:%d/%s: %w", d.Host, d.Port, d.Name, err,
		)
	}
	return p, &repo.Repos{
		Vehicles: vehiclesrp.New(),
		Clients:  clientsrp.New(),
		Rentals:  rentalsrp.New(),
		Schema:   schemarp.New(),
	}, nil
}

// ConnectionURL finds the password of the configured user from the
// pgpass formatted file at path and returns the PostgreSQL connection
// URL. Lines of that file are formatted as
// host:port:dbname:user:password and empty lines or lines which start
// with a # are ignored.
func (d Database) ConnectionURL(path string) (string, error) {
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, d.User)
	var pass string
	for _, line := range strings.Split(string(passLines), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prfx) {
			pass = line[len(prfx):]
			break
		}
	}
	if pass == "" {
		return "", fmt.Errorf("no matching password line")
	}
	q := url.Values{}
	if d.ConnectTimeout != nil {
		secs := int(d.ConnectTimeout.Std().Round(time.Second).Seconds())
		q.Set("connect_timeout", strconv.Itoa(max(secs, 1)))
	}
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.User, pass),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}
