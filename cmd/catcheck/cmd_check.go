// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/catcheck/workbook"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		format        string
		strict        bool
		noSuggestions bool
	)
	cmd := &cobra.Command{
		Use:   "check <workbook>",
		Short: "Check every entry of a YAML or JSON workbook",
		Long: `Check builds every category, functor and natural transformation of the
workbook, verifies their laws and prints a report. The exit code is 1 when
any entry is malformed or invalid; with --strict warnings count as errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}
			if cmd.Flags().Changed("no-suggestions") {
				cfg.Suggestions = !noSuggestions
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			return a.check(cmd, args[0], cfg)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "text", "report format: text or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	cmd.Flags().BoolVar(&noSuggestions, "no-suggestions", false, "do not warn about undeclared composites")

	return cmd
}

func (a *app) check(cmd *cobra.Command, path string, cfg Config) error {
	wb, err := workbook.Load(path)
	if err != nil {
		return err
	}
	rep, err := wb.Check(cmd.Context(),
		workbook.WithLogger(a.logger),
		workbook.WithStrict(cfg.Strict),
		workbook.WithSuggestions(cfg.Suggestions),
	)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(a.stdout, string(out))
	default:
		fmt.Fprint(a.stdout, rep.String())
	}

	if !rep.Valid {
		a.exitCode = exitInvalid
	}
	a.logger.Info("check finished",
		zap.String("workbook", path),
		zap.String("run", rep.RunID),
		zap.Bool("valid", rep.Valid),
	)

	return nil
}
