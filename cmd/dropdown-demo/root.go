package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/forgeui/middlewares"
	"github.com/dmitrymomot/forgeui/pkg/logger"
)

type serveFlags struct {
	config   string
	addr     string
	logLevel string
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dropdown-demo",
		Short:         "Demo server for htmx-driven select widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd(), newCheckCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(flags.config, os.Getenv)
			if err != nil {
				return err
			}
			if flags.addr != "" {
				cfg.Addr = flags.addr
			}
			if flags.logLevel != "" {
				cfg.Log.Level = flags.logLevel
			}

			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return run(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flags.addr, "addr", "", "Listen address (overrides config and DEMO_ADDR)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(path, os.Getenv)
			if err != nil {
				return err
			}
			cmd.Printf("config ok: %d widgets, %s store\n", len(cfg.Widgets), cfg.Store.Driver)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "Path to a YAML config file")
	return cmd
}

func newLogger(cfg LogConfig) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithExtractors(middlewares.RequestIDExtractor()),
	), nil
}
