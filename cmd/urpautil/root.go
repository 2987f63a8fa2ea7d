// Copyright 2026 UltimateRPA Tools
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/ultimaterpa/urpautils/cmd/urpautil/commands"
	"github.com/ultimaterpa/urpautils/cmd/urpautil/opts"
	"github.com/ultimaterpa/urpautils/pkg/check"
	"github.com/ultimaterpa/urpautils/pkg/config"
	"github.com/ultimaterpa/urpautils/pkg/log"
)

var (
	// Flags
	configFile string
	debug      bool
	async      bool
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	var cfg *config.Config
	var err error

	// A missing default config file is fine, an explicitly named one is not.
	if _, statErr := os.Stat(configFile); statErr == nil {
		cfg, err = config.Load(ctx, configFile)
	} else if configFile == defaultConfigFile {
		cfg, err = config.FromEnv(ctx)
	} else {
		return nil, errors.Errorf("opening config file: %w", statErr)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if async {
		cfg.Async = true
	}

	return &opts.RootOpts{
		Config: cfg,
		Lookup: cfg.HolidayLookup(),
		Runner: check.NewRunner(cfg.Async),
		Out:    os.Stdout,
	}, nil
}

const defaultConfigFile = ".urpautil.yaml"

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "evaluate batches concurrently")
}

// setupLogging configures zerolog based on flags and config
func setupLogging(level zerolog.Level) {
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := log.NewConsole(os.Stderr, level)
	zerolog.DefaultContextLogger = &logger
}

// NewRootCmd builds the urpautil command tree
func NewRootCmd() *cobra.Command {
	shared := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:           "urpautil",
		Short:         "Utilities for attended and unattended robots",
		Long:          "urpautil validates Czech business identifiers and answers scheduling questions (run windows, previous business days) for robot scripts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(zerolog.InfoLevel)

			loaded, err := newRootOpts(cmd.Context())
			if err != nil {
				return err
			}
			setupLogging(loaded.Config.ZerologLevel())

			*shared = *loaded
			return nil
		},
	}

	addRootFlags(cmd)

	cmd.AddCommand(
		commands.NewRcCmd(shared),
		commands.NewIcoCmd(shared),
		commands.NewAccountCmd(shared),
		commands.NewWorkdayCmd(shared),
		commands.NewWindowCmd(shared),
		commands.NewCheckCmd(shared),
	)

	return cmd
}
