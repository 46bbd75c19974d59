package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/media/ffprobe"
	"cutline/internal/project"
)

var sourceFileExtensions = map[string]struct{}{
	".mkv": {},
	".mp4": {},
	".mov": {},
	".avi": {},
}

func newNewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "new <path>",
		Short: "Create a project for a video file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			info, err := os.Stat(absPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file does not exist: %s", absPath)
				}
				return fmt.Errorf("inspect file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", absPath)
			}

			ext := strings.ToLower(filepath.Ext(info.Name()))
			if _, ok := sourceFileExtensions[ext]; !ok {
				return fmt.Errorf("unsupported file extension %q", ext)
			}

			return ctx.withLockedStore(func(cfg *config.Config, store *project.Store) error {
				probe, err := ffprobe.Inspect(cmd.Context(), cfg.Export.FFprobeBinary, absPath)
				if err != nil {
					return fmt.Errorf("probe source: %w", err)
				}
				duration, err := probe.Duration()
				if err != nil {
					return fmt.Errorf("probe source: %w", err)
				}
				if probe.VideoStreamCount() == 0 {
					return fmt.Errorf("%s has no video streams", absPath)
				}

				proj, err := store.Create(cmd.Context(), absPath, duration)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s, %s)\n",
					shortUUID(proj.UUID), proj.Title, formatTimecode(proj.Duration))
				return nil
			})
		},
	}
}
