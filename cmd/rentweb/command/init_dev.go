// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/car-rental/pkg/adapter/config"
	"github.com/momeni/car-rental/pkg/core/log"
	"github.com/spf13/cobra"
)

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development suitable data",
	Long: `Initialize database contents with development suitable data.
The vehicles, clients, and rentals tables are dropped (if they exist)
and created again. Thereafter, a few sample vehicles and clients are
inserted and each vehicle is booked for one client, relative to the
current date in the configured time zone.
Since the memory driver loses all rows after exit, the --dev-data flag
of the root command should be used for that driver instead.`,
	RunE: initDev,
	Args: cobra.NoArgs,
}

func initDev(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if c.Database.Driver == config.DriverMemory {
		log.Warn(ctx, "dev data will be lost on exit with memory driver")
	}
	p, r, err := c.Database.NewPoolAndRepos(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	booking, err := c.NewBookingUseCase(p, r)
	if err != nil {
		return fmt.Errorf("creating booking use case: %w", err)
	}
	err = c.NewInitDBUseCase(p, r).InitDev(ctx, booking.Today())
	if err != nil {
		return fmt.Errorf("initializing DB with dev data: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initDevCmd)
}
