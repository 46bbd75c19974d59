package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/project"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Display a project's timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *project.Store) error {
				proj, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Project:  %s (%s)\n", proj.Title, shortUUID(proj.UUID))
				fmt.Fprintf(out, "Source:   %s (%s)\n", proj.SourcePath, formatTimecode(proj.Duration))
				fmt.Fprintf(out, "Timeline: %s across %d segment(s)\n",
					formatTimecode(proj.Timeline.TotalDuration()), len(proj.Timeline))
				fmt.Fprintf(out, "History:  undo %s, redo %s\n",
					yesNo(len(proj.Undo) > 0), yesNo(len(proj.Redo) > 0))

				if len(proj.Timeline) == 0 {
					fmt.Fprintln(out, "Timeline is empty; every range has been cut.")
					return nil
				}

				fmt.Fprintln(out, renderSegmentTable(proj.Timeline))
				return nil
			})
		},
	}
}
