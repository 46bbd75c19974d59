package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"cutline/internal/config"
	"cutline/internal/exportplan"
	"cutline/internal/logging"
	"cutline/internal/preflight"
	"cutline/internal/project"
	"cutline/internal/transcode"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var reencode bool
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "export <project>",
		Short: "Render the kept portions of a project to a new file",
		Long: "Exports every kept segment in timeline order. The default strategy stream-copies\n" +
			"each segment and joins them losslessly; --reencode uses a single ffmpeg filter\n" +
			"graph instead, trading speed for frame-accurate cut points.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return ctx.withStore(func(cfg *config.Config, store *project.Store) error {
				proj, err := store.Resolve(runCtx, args[0])
				if err != nil {
					return err
				}

				plan, err := exportplan.Compile(proj.SourcePath, proj.Timeline)
				if err != nil {
					return err
				}

				target := strings.TrimSpace(outputPath)
				if target == "" {
					target = defaultExportPath(proj, cfg.Export.OutputContainer)
				}
				target, err = filepath.Abs(target)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}

				var sourceSize int64
				if info, err := os.Stat(proj.SourcePath); err == nil {
					sourceSize = info.Size()
				}

				results := preflight.RunExport(cfg, filepath.Dir(target), sourceSize)
				if !preflight.AllPassed(results) {
					out := cmd.OutOrStdout()
					colorize := shouldColorize(out)
					for _, result := range results {
						kind := statusOK
						if !result.Passed {
							kind = statusError
						}
						fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
					}
					return fmt.Errorf("preflight checks failed")
				}

				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return fmt.Errorf("configure logging: %w", err)
				}

				engine := transcode.New(cfg.Export.FFmpegBinary, logger)
				opts := transcode.Options{
					OutputPath: target,
					Reencode:   reencode,
					Overwrite:  overwrite || cfg.Export.OverwriteExisting,
				}
				if err := engine.Run(runCtx, plan, opts); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s (%s across %d segment(s)) to %s\n",
					proj.Title, formatTimecode(plan.TotalDuration()), plan.SegmentCount(), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (defaults next to the source)")
	cmd.Flags().BoolVar(&reencode, "reencode", false, "Re-encode through a filter graph instead of stream copy")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite the destination if it exists")
	return cmd
}

func defaultExportPath(proj *project.Project, container string) string {
	dir := filepath.Dir(proj.SourcePath)
	base := filepath.Base(proj.SourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, fmt.Sprintf("%s.cut.%s", base, container))
}
