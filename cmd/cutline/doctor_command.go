package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cutline/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools and data directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Directories", colorize) {
				fmt.Fprintln(out, line)
			}
			dirResults := []preflight.Result{
				preflight.CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
				preflight.CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
				preflight.CheckDiskSpace("Disk space", cfg.Paths.DataDir, 0),
			}
			printResults(out, dirResults, colorize)

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Tools", colorize) {
				fmt.Fprintln(out, line)
			}
			toolResults := preflight.CheckTools(cfg)
			printResults(out, toolResults, colorize)

			if !preflight.AllPassed(dirResults) || !preflight.AllPassed(toolResults) {
				return fmt.Errorf("one or more checks failed")
			}
			return nil
		},
	}
}

func printResults(out io.Writer, results []preflight.Result, colorize bool) {
	for _, result := range results {
		kind := statusOK
		if !result.Passed {
			kind = statusError
		}
		fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
	}
}
