package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/logging"
	"cutline/internal/preview"
	"cutline/internal/project"
)

func newFramesCommand(ctx *commandContext) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "frames <project> <timecode>...",
		Short: "Extract preview stills at virtual positions",
		Long: "Extracts one still per timecode, interpreted on the virtual timeline (deleted\n" +
			"ranges collapsed out). Repeated positions reuse the cached still.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *project.Store) error {
				proj, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return fmt.Errorf("configure logging: %w", err)
				}
				extractor, err := preview.NewExtractor(cfg, logger)
				if err != nil {
					return err
				}
				defer extractor.Close()

				dir := strings.TrimSpace(outputDir)
				if dir == "" {
					dir = "."
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory %q: %w", dir, err)
				}

				total := proj.Timeline.TotalDuration()
				out := cmd.OutOrStdout()
				for _, arg := range args[1:] {
					virtual, err := parseTimecode(arg)
					if err != nil {
						return err
					}
					if virtual > total {
						return fmt.Errorf("timecode %s is past the timeline end (%s)", formatTimecode(virtual), formatTimecode(total))
					}
					source := proj.Timeline.VirtualToSource(virtual)

					frame, err := extractor.FrameAt(cmd.Context(), proj.SourcePath, source)
					if err != nil {
						return err
					}

					dest := filepath.Join(dir, fmt.Sprintf("%s-%s.png",
						shortUUID(proj.UUID), strings.ReplaceAll(formatTimecode(virtual), ":", "-")))
					if err := copyFile(frame.Path, dest); err != nil {
						return fmt.Errorf("write still: %w", err)
					}
					fmt.Fprintf(out, "Wrote %s (virtual %s, source %s)\n",
						dest, formatTimecode(virtual), formatTimecode(source))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "Directory for extracted stills (defaults to the current directory)")
	return cmd
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}
