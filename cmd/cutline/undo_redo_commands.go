package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/editor"
	"cutline/internal/project"
)

func newUndoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <project>",
		Short: "Revert the most recent edit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryStep(ctx, cmd, args[0], "undo")
		},
	}
}

func newRedoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "redo <project>",
		Short: "Reapply the most recently undone edit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryStep(ctx, cmd, args[0], "redo")
		},
	}
}

func runHistoryStep(ctx *commandContext, cmd *cobra.Command, ref, direction string) error {
	return ctx.withLockedStore(func(cfg *config.Config, store *project.Store) error {
		proj, err := store.Resolve(cmd.Context(), ref)
		if err != nil {
			return err
		}

		session := editor.New(cfg.Editing.HistoryDepth)
		if err := session.Restore(proj.Timeline, proj.Undo, proj.Redo); err != nil {
			return fmt.Errorf("restore session: %w", err)
		}

		var applied bool
		if direction == "undo" {
			applied = session.Undo()
		} else {
			applied = session.Redo()
		}
		if !applied {
			fmt.Fprintf(cmd.OutOrStdout(), "Nothing to %s\n", direction)
			return nil
		}

		proj.Timeline = session.Segments()
		proj.Undo, proj.Redo = session.History()
		if err := store.Save(cmd.Context(), proj); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Applied %s; timeline is now %s across %d segment(s)\n",
			direction, formatTimecode(session.TotalDuration()), session.SegmentCount())
		return nil
	})
}
