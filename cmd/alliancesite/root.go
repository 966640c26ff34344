package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"AllianceSite/internal/app"
	"AllianceSite/internal/config"
	"AllianceSite/internal/logging"
)

var version = "dev"

type cli struct {
	cfgFile string
	envFile string
	cfg     config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "alliancesite",
		Short: "SNB Alliance website backed by a headless WordPress",
		Long: `alliancesite serves the SNB Alliance marketing site. Editable content is read
from the WordPress REST API; every page falls back to built-in content when
the CMS is disabled or unreachable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.initialize()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "YAML config file (default $ALLIANCE_SITE_CONFIG)")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "probe",
			Short: "Test the WordPress API connection and print the report",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.probe(cmd)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			PersistentPreRunE: func(*cobra.Command, []string) error {
				return nil
			},
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)
	return root
}

func (c *cli) initialize() error {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", c.envFile, err)
		}
	}

	if c.cfgFile != "" {
		c.cfg = config.LoadFile(c.cfgFile)
	} else {
		c.cfg = config.Load()
	}
	c.logger = logging.New(c.cfg.Logging.Level)
	return nil
}

func (c *cli) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(c.cfg, c.logger)
	if err != nil {
		return err
	}
	if err := application.Run(ctx); err != nil {
		c.logger.Error("application stopped", "error", err)
		return err
	}
	return nil
}

func (c *cli) probe(cmd *cobra.Command) error {
	application, err := app.New(c.cfg, c.logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	report, status := application.Probe(ctx)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if !report.OK() {
		return fmt.Errorf("wordpress connection test failed with status %d", status)
	}
	return nil
}
