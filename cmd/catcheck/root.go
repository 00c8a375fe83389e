// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

// app holds what every subcommand shares once the root has run.
type app struct {
	stdout, stderr io.Writer
	configPath     string
	logLevel       string
	development    bool

	cfg      Config
	logger   *zap.Logger
	exitCode int
}

// execute runs the CLI with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	_ = a.logger.Sync()
	if err != nil {
		fmt.Fprintf(stderr, "catcheck: %v\n", err)
		return exitError
	}

	return a.exitCode
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catcheck",
		Short:         "Check finite categories, functors and natural transformations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.development, "dev", false, "human-readable development logs")

	root.AddCommand(a.checkCmd(), a.exampleCmd())

	return root
}

// setup loads the configuration, applies persistent flag overrides and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("dev") {
		cfg.Development = a.development
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, a.stderr)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("format", cfg.Format),
		zap.Bool("strict", cfg.Strict),
		zap.Bool("suggestions", cfg.Suggestions),
	)

	return nil
}
