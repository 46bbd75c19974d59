package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/editor"
	"cutline/internal/project"
)

func newCutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cut <project> <start> <end>",
		Short: "Delete a range of the virtual timeline",
		Long: "Deletes the half-open range [start, end) of the project's virtual timeline.\n" +
			"Positions use timecodes: SS, MM:SS, or HH:MM:SS, with optional fractional seconds.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseTimecode(args[1])
			if err != nil {
				return err
			}
			end, err := parseTimecode(args[2])
			if err != nil {
				return err
			}

			return ctx.withLockedStore(func(cfg *config.Config, store *project.Store) error {
				proj, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				session := editor.New(cfg.Editing.HistoryDepth)
				if err := session.Restore(proj.Timeline, proj.Undo, proj.Redo); err != nil {
					return fmt.Errorf("restore session: %w", err)
				}
				if err := session.DeleteRange(start, end); err != nil {
					return err
				}

				proj.Timeline = session.Segments()
				proj.Undo, proj.Redo = session.History()
				if err := store.Save(cmd.Context(), proj); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Cut %s - %s; timeline is now %s across %d segment(s)\n",
					formatTimecode(start), formatTimecode(end),
					formatTimecode(session.TotalDuration()), session.SegmentCount())
				return nil
			})
		},
	}
}
