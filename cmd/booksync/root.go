// Copyright 2025 walteh LLC
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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/booksync/pkg/config"
	"github.com/walteh/booksync/pkg/status"
	"github.com/walteh/booksync/pkg/syncer"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile    string
	deviceDir     string
	documentsDirs []string
	dryRun        bool
	debug         bool
)

// newRootCmd creates the root command, which runs one sync pass.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booksync",
		Short: "Synchronise books and documents onto a mounted e-reader",
		Long: `booksync copies EPUB and PDF files from your documents directories onto a
mounted e-reader volume. Documents that already exist on the device are
left untouched; nothing on the device is ever deleted or overwritten.

The defaults assume a udisks2-style automount such as
/media/<user>/KOBOeReader for the device and ~/Documents for the source,
but both can be overridden for other setups.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			logger := zerolog.Ctx(ctx).Level(level)
			ctx = logger.WithContext(ctx)

			cfg, err := resolveConfig()
			if err != nil {
				return err
			}

			printer := status.NewPrinter(os.Stdout)
			_, err = syncer.New(cfg, printer).Run(ctx)
			if err != nil {
				return errors.Errorf("syncing documents: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path (.yaml, .json, .hcl or .booksync)")
	cmd.Flags().StringVar(&deviceDir, "device-dir", "", "mounted device directory to copy documents onto")
	cmd.Flags().StringArrayVar(&documentsDirs, "documents-dir", nil, "documents directory to copy from (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be copied without doing it")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolveConfig builds the effective configuration: config file if given,
// overridden by flags, topped up with host defaults, then validated.
func resolveConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if deviceDir != "" {
		cfg.DeviceDir = deviceDir
	}
	if len(documentsDirs) > 0 {
		cfg.DocumentsDirs = documentsDirs
	}
	if dryRun {
		cfg.DryRun = true
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
