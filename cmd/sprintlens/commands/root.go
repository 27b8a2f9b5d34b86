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
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the sprintlens root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("SPRINTLENS_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "sprintlens",
		Short:         "Sprintlens - sprint commitment-date extraction for Jira exports",
		Long:          "Sprintlens reads Jira issue-search exports and infers when each issue was actually committed to an active sprint, as opposed to the sprint's nominal start or the issue's creation date.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Sprintlens",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sprintlens version %s\n", version)
		},
	})

	cmd.AddCommand(NewExtractCommand())

	return cmd
}
