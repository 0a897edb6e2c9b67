// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the rentweb
// project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database initialization actions.
// The init-dev and init-prod actions recreate the tables and fill them
// with the development or production suitable data records.
//
//	./rentweb [-c /path/of/main/config.yaml] [--dev-data]
//	./rentweb db init-dev [-c /path/of/main/config.yaml]
//	./rentweb db init-prod [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/momeni/car-rental/pkg/adapter/config"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin"
	"github.com/momeni/car-rental/pkg/adapter/restful/gin/routes"
	"github.com/momeni/car-rental/pkg/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	envPath string
	devData bool
)

var rootCmd = &cobra.Command{
	Use:   "rentweb",
	Short: "A car rental booking web service",
	Long: `A car rental booking web service which keeps a fleet of
vehicles and a list of clients, and books vehicles for clients over
whole-day periods. Each booking is charged by the vehicle daily rate
and two active bookings of one vehicle may not share any day.
Vehicles and clients are deactivated instead of being deleted and
a vehicle or client with a current or future booking may not be
deactivated.
Entities are kept in a PostgreSQL database (or in memory for quick
experiments) and are managed using the REST APIs which are served
under the /api/rentweb/v1 path.`,
	RunE: startWebServer,
	Args: cobra.NoArgs,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
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
	muc := c.NewInitDBUseCase(p, r)
	if devData {
		if err = muc.InitDev(ctx, booking.Today()); err != nil {
			return fmt.Errorf("initializing DB with dev data: %w", err)
		}
	} else if ok, err := muc.Initialized(ctx); err != nil {
		return fmt.Errorf("checking DB tables: %w", err)
	} else if !ok {
		return errors.New("DB tables are missing, run db init-prod first")
	}
	var e *gin.Engine = c.Gin.NewEngine(slog.Default())
	routes.Register(e, booking)
	log.Info(
		ctx, "starting web server",
		slog.String("address", c.Gin.Address),
		slog.String("driver", c.Database.Driver),
	)
	if err = e.Run(c.Gin.Address); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// loadConfig loads the .env file (if any) and the config file, and
// replaces the default structured logger based on the loaded settings.
func loadConfig() (*config.Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load(%q): %w", envPath, err)
	}
	fixConfigPath()
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	slog.SetDefault(c.Logging.NewLogger(os.Stderr))
	return c, nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&envPath, "env-file", ".env", "optional environment file path",
	)
	rootCmd.Flags().BoolVar(
		&devData, "dev-data", false,
		"recreate tables with development data before serving",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// It runs after loading the .env file, so CONFIG_FILE may be set there.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
