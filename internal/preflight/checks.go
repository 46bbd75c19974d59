package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"cutline/internal/config"
	"cutline/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDiskSpace verifies that the filesystem holding path has at least
// requiredBytes available. A stream-copy export needs roughly the size of
// the kept clips, so callers usually pass the source file size as a
// conservative estimate.
func CheckDiskSpace(name, path string, requiredBytes int64) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if requiredBytes > 0 && free < uint64(requiredBytes) {
		return Result{Name: name, Detail: fmt.Sprintf("%s free, %s required", formatBytes(int64(free)), formatBytes(requiredBytes))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s free", formatBytes(int64(free)))}
}

// CheckTools converts binary availability statuses into preflight results.
func CheckTools(cfg *config.Config) []Result {
	statuses := deps.CheckBinaries(deps.ForConfig(cfg))
	results := make([]Result, 0, len(statuses))
	for _, status := range statuses {
		result := Result{Name: status.Name, Passed: status.Available}
		if status.Available {
			result.Detail = status.Command
		} else {
			result.Detail = status.Detail
		}
		results = append(results, result)
	}
	return results
}

// RunExport executes the checks an export run depends on: the output
// directory must be writable, the destination filesystem must have room
// for the clips, and ffmpeg must resolve.
func RunExport(cfg *config.Config, outputDir string, sourceSizeBytes int64) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckDirectoryAccess("Output directory", outputDir))
	results = append(results, CheckDiskSpace("Disk space", outputDir, sourceSizeBytes))
	results = append(results, CheckTools(cfg)...)
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
