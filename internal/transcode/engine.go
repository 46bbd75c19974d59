// Package transcode turns an export plan into ffmpeg invocations.
//
// Two strategies are supported. Lossless export trims each clip with stream
// copy into a temporary part file and joins the parts with the concat
// demuxer; cancellation is observed between clip operations so an aborted
// export never leaves a corrupted output. Re-encode export builds one
// trim/atrim + concat filter graph and runs ffmpeg once.
//
// The engine consumes the plan verbatim; it never decides what to keep.
package transcode

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cutline/internal/exportplan"
	"cutline/internal/logging"
)

// Options configures a single export run.
type Options struct {
	OutputPath string
	// Reencode selects the filter-graph strategy instead of stream copy.
	Reencode bool
	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// Engine runs ffmpeg against compiled export plans.
type Engine struct {
	binary string
	logger *slog.Logger
}

// New returns an engine invoking the given ffmpeg binary.
func New(binary string, logger *slog.Logger) *Engine {
	if strings.TrimSpace(binary) == "" {
		binary = "ffmpeg"
	}
	return &Engine{binary: binary, logger: logging.NewComponentLogger(logger, "transcode")}
}

// Run executes the plan. The output file appears only after every segment
// operation completed; failures and cancellation clean up partial artifacts.
func (e *Engine) Run(ctx context.Context, plan exportplan.Plan, opts Options) error {
	if len(plan.Clips) == 0 {
		return exportplan.ErrEmptyTimeline
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return fmt.Errorf("transcode: output path is required")
	}
	if !opts.Overwrite {
		if _, err := os.Stat(opts.OutputPath); err == nil {
			return fmt.Errorf("transcode: output %s already exists", opts.OutputPath)
		}
	}

	started := time.Now()
	e.logger.Info("export started",
		logging.String("source", plan.SourcePath),
		logging.String("output", opts.OutputPath),
		logging.Int("clips", len(plan.Clips)),
		logging.Bool("reencode", opts.Reencode),
	)

	var err error
	if opts.Reencode {
		err = e.runFilterGraph(ctx, plan, opts)
	} else {
		err = e.runStreamCopy(ctx, plan, opts)
	}
	if err != nil {
		return err
	}

	e.logger.Info("export finished",
		logging.String("output", opts.OutputPath),
		logging.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func (e *Engine) runStreamCopy(ctx context.Context, plan exportplan.Plan, opts Options) error {
	workDir, err := os.MkdirTemp(filepath.Dir(opts.OutputPath), ".cutline-export-*")
	if err != nil {
		return fmt.Errorf("transcode: create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	ext := filepath.Ext(opts.OutputPath)
	parts := make([]string, 0, len(plan.Clips))
	for i, clip := range plan.Clips {
		// Cancellation is observed between segment operations so a partial
		// export never reaches the output path.
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("transcode: cancelled before clip %d: %w", i+1, err)
		}
		part := filepath.Join(workDir, fmt.Sprintf("part-%03d%s", i, ext))
		args := ClipArgs(plan.SourcePath, clip, part)
		if err := e.runFFmpeg(ctx, args); err != nil {
			return fmt.Errorf("transcode: clip %d/%d: %w", i+1, len(plan.Clips), err)
		}
		e.logger.Debug("clip rendered",
			logging.Int("clip", i+1),
			logging.Duration("start", clip.Start),
			logging.Duration("end", clip.End),
		)
		parts = append(parts, part)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transcode: cancelled before concat: %w", err)
	}

	listPath := filepath.Join(workDir, "concat.txt")
	if err := os.WriteFile(listPath, []byte(ConcatListing(parts)), 0o644); err != nil {
		return fmt.Errorf("transcode: write concat listing: %w", err)
	}
	if err := e.runFFmpeg(ctx, ConcatArgs(listPath, opts.OutputPath, opts.Overwrite)); err != nil {
		// Concat writes the output directly; do not leave a truncated file.
		_ = os.Remove(opts.OutputPath)
		return fmt.Errorf("transcode: concat: %w", err)
	}
	return nil
}

func (e *Engine) runFilterGraph(ctx context.Context, plan exportplan.Plan, opts Options) error {
	if err := e.runFFmpeg(ctx, FilterGraphArgs(plan, opts.OutputPath, opts.Overwrite)); err != nil {
		_ = os.Remove(opts.OutputPath)
		return fmt.Errorf("transcode: filter graph: %w", err)
	}
	return nil
}

func (e *Engine) runFFmpeg(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, e.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if len(detail) > 2048 {
			detail = detail[len(detail)-2048:]
		}
		return fmt.Errorf("%s: %w: %s", e.binary, err, detail)
	}
	return nil
}

// ClipArgs builds the stream-copy trim invocation for one clip.
func ClipArgs(source string, clip exportplan.Clip, output string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-ss", formatSeconds(clip.Start),
		"-to", formatSeconds(clip.End),
		"-i", source,
		"-map", "0",
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		"-y", output,
	}
}

// ConcatArgs builds the concat-demuxer join invocation.
func ConcatArgs(listPath, output string, overwrite bool) []string {
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "concat", "-safe", "0",
		"-i", listPath,
		"-c", "copy",
	}
	if overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	return append(args, output)
}

// ConcatListing renders the concat demuxer input file, one part per line.
func ConcatListing(parts []string) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(part, "'", `'\''`))
		b.WriteString("'\n")
	}
	return b.String()
}

// FilterGraphArgs builds the single-pass re-encode invocation: one
// trim/atrim pair per clip concatenated in plan order.
func FilterGraphArgs(plan exportplan.Plan, output string, overwrite bool) []string {
	var graph strings.Builder
	for i, clip := range plan.Clips {
		start := formatSeconds(clip.Start)
		end := formatSeconds(clip.End)
		fmt.Fprintf(&graph, "[0:v]trim=start=%s:end=%s,setpts=PTS-STARTPTS[v%d];", start, end, i)
		fmt.Fprintf(&graph, "[0:a]atrim=start=%s:end=%s,asetpts=PTS-STARTPTS[a%d];", start, end, i)
	}
	for i := range plan.Clips {
		fmt.Fprintf(&graph, "[v%d][a%d]", i, i)
	}
	fmt.Fprintf(&graph, "concat=n=%d:v=1:a=1[outv][outa]", len(plan.Clips))

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", plan.SourcePath,
		"-filter_complex", graph.String(),
		"-map", "[outv]", "-map", "[outa]",
	}
	if overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	return append(args, output)
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}
