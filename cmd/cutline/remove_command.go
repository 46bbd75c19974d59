package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/project"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "remove [project]",
		Short: "Delete a project (or all projects with --all)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("--all cannot be combined with a project reference")
			}
			if !all && len(args) == 0 {
				return errors.New("a project reference or --all is required")
			}

			return ctx.withLockedStore(func(cfg *config.Config, store *project.Store) error {
				out := cmd.OutOrStdout()
				if all {
					cleared, err := store.Clear(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Removed %d project(s)\n", cleared)
					return nil
				}

				proj, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				removed, err := store.Remove(cmd.Context(), proj.UUID)
				if err != nil {
					return err
				}
				if !removed {
					return project.ErrNotFound
				}
				fmt.Fprintf(out, "Removed project %s (%s)\n", shortUUID(proj.UUID), proj.Title)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every project")
	return cmd
}
