package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/project"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *project.Store) error {
				projects, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(projects) == 0 {
					fmt.Fprintln(out, "No projects. Create one with 'cutline new <file>'.")
					return nil
				}

				fmt.Fprintln(out, renderProjectTable(projects))
				return nil
			})
		},
	}
}
