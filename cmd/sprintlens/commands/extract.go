// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Sprintlens - Sprintlens infers, for each issue in a Jira issue-search export, the date the
issue was actually committed to an active sprint, reconciling sprint start dates with the
issue's changelog, and emits a per-issue CSV of commitment and status-transition dates.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/sprintlens/cmd/sprintlens/internal/clierr"
	"github.com/bartekus/sprintlens/internal/config"
	"github.com/bartekus/sprintlens/internal/extract"
	"github.com/bartekus/sprintlens/internal/inputs"
	"github.com/bartekus/sprintlens/internal/jira"
	"github.com/bartekus/sprintlens/internal/report"
)

const defaultOutputPath = "commitment-dates.csv"

func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [input files or directories...]",
		Short: "Extract commitment and status dates from Jira exports into a CSV",
		Long: `Extract reads one or more Jira issue-search export files (a directory argument
contributes the .json files inside it), infers each issue's sprint commitment date, and
writes one CSV row per retained issue with its commitment date and first status-transition
dates.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, outputPath, err := buildRunConfig(cmd)
			if err != nil {
				return err
			}

			files, err := inputs.Collect(args)
			if err != nil {
				return clierr.Wrap(1, "extract: resolve inputs", err)
			}
			if len(files) == 0 {
				return clierr.New(2, "extract: no export files found in the given inputs")
			}

			var issues []jira.Issue
			for _, f := range files {
				ex, err := jira.ReadExport(f)
				if err != nil {
					return clierr.Wrap(1, "extract", err)
				}
				issues = append(issues, ex.Issues...)
			}

			results, dropped := extract.Run(issues, cfg)

			content, err := report.Render(results, cfg.DateFormat)
			if err != nil {
				return clierr.Wrap(1, "extract: render csv", err)
			}
			if err := report.AtomicWrite(outputPath, content); err != nil {
				return clierr.Wrap(1, "extract: write output", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d issues (%d dropped) to %s\n",
				len(results), dropped, outputPath)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", defaultOutputPath, "path of the CSV artifact to write")
	cmd.Flags().String("config", "", "path to a YAML configuration file")
	cmd.Flags().String("date-format", "", "Go time layout for date columns (default "+config.DefaultDateFormat+")")
	cmd.Flags().StringArray("sprint-keyword", nil, "keep only issues with a sprint name containing this keyword (repeatable)")
	cmd.Flags().Bool("omit-outside-sprint", false, "skip issues with no sprint assignments")

	return cmd
}

// buildRunConfig assembles the run configuration: defaults, then the config
// file if given, then flag overrides.
func buildRunConfig(cmd *cobra.Command) (config.Config, string, error) {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return config.Config{}, "", clierr.Newf(2, "extract: get output flag: %v", err)
	}

	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, "", clierr.Newf(2, "extract: get config flag: %v", err)
	}

	cfg := config.Default()
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return config.Config{}, "", clierr.Wrap(1, "extract: load config", err)
		}
	}

	dateFormat, err := cmd.Flags().GetString("date-format")
	if err != nil {
		return config.Config{}, "", clierr.Newf(2, "extract: get date-format flag: %v", err)
	}
	if dateFormat != "" {
		cfg.DateFormat = dateFormat
	}

	keywords, err := cmd.Flags().GetStringArray("sprint-keyword")
	if err != nil {
		return config.Config{}, "", clierr.Newf(2, "extract: get sprint-keyword flag: %v", err)
	}
	if len(keywords) > 0 {
		cfg.SprintKeywords = keywords
	}

	if cmd.Flags().Changed("omit-outside-sprint") {
		omit, err := cmd.Flags().GetBool("omit-outside-sprint")
		if err != nil {
			return config.Config{}, "", clierr.Newf(2, "extract: get omit-outside-sprint flag: %v", err)
		}
		cfg.OmitOutsideSprint = omit
	}

	return cfg, outputPath, nil
}
