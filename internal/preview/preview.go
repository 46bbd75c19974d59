// Package preview extracts still frames so cut points can be checked
// visually. Stills live in a fixed-capacity cache; asking for the same
// position twice reuses the decoded frame instead of rerunning ffmpeg.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cutline/internal/config"
	"cutline/internal/framecache"
	"cutline/internal/logging"
)

// Frame is one extracted still. The extractor's cache owns it; Release
// removes the underlying file on eviction, overwrite, and Clear.
type Frame struct {
	Path string
}

// Release removes the still from disk.
func (f *Frame) Release() error {
	if f == nil || f.Path == "" {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Extractor renders source-time stills through ffmpeg into a private work
// directory and keeps the most recent ones cached.
type Extractor struct {
	binary  string
	workDir string
	cache   *framecache.Cache[time.Duration, *Frame]
	logger  *slog.Logger
}

// NewExtractor builds an extractor sized by the configured frame capacity.
func NewExtractor(cfg *config.Config, logger *slog.Logger) (*Extractor, error) {
	cache, err := framecache.New[time.Duration, *Frame](cfg.Cache.FrameCapacity, logger)
	if err != nil {
		return nil, err
	}
	workDir, err := os.MkdirTemp("", "cutline-frames-*")
	if err != nil {
		return nil, fmt.Errorf("preview: create work dir: %w", err)
	}
	binary := strings.TrimSpace(cfg.Export.FFmpegBinary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Extractor{
		binary:  binary,
		workDir: workDir,
		cache:   cache,
		logger:  logging.NewComponentLogger(logger, "preview"),
	}, nil
}

// FrameAt returns the still at the given source position, extracting it on a
// cache miss. The frame stays owned by the extractor; callers copy its
// contents if they need them past the next extraction.
func (e *Extractor) FrameAt(ctx context.Context, sourcePath string, source time.Duration) (*Frame, error) {
	if frame, ok := e.cache.Get(source); ok {
		return frame, nil
	}

	target := filepath.Join(e.workDir, fmt.Sprintf("frame-%d.png", source.Microseconds()))
	cmd := exec.CommandContext(ctx, e.binary, ExtractArgs(sourcePath, source, target)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		return nil, fmt.Errorf("%s: %w: %s", e.binary, err, detail)
	}
	if _, err := os.Stat(target); err != nil {
		return nil, fmt.Errorf("preview: no frame produced at %s", source)
	}

	frame := &Frame{Path: target}
	e.cache.Put(source, frame)
	e.logger.Debug("frame extracted",
		logging.Duration("source", source),
		logging.String("path", target),
	)
	return frame, nil
}

// CachedFrames reports how many stills are currently held.
func (e *Extractor) CachedFrames() int {
	return e.cache.Len()
}

// Close releases every cached frame and removes the work directory.
func (e *Extractor) Close() error {
	e.cache.Clear()
	return os.RemoveAll(e.workDir)
}

// ExtractArgs builds the single-still invocation for one source position.
func ExtractArgs(source string, position time.Duration, output string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-ss", strconv.FormatFloat(position.Seconds(), 'f', 6, 64),
		"-i", source,
		"-frames:v", "1",
		"-y",
		output,
	}
}
