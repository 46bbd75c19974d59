// Package deps checks the availability of the external binaries cutline
// shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"cutline/internal/config"
)

// Requirement defines an external dependency cutline relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if resolved, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
		} else {
			status.Command = resolved
			status.Available = true
		}
		results = append(results, status)
	}
	return results
}

// ForConfig returns the requirement set derived from export configuration.
func ForConfig(cfg *config.Config) []Requirement {
	return []Requirement{
		{Name: "FFmpeg", Command: cfg.Export.FFmpegBinary, Description: "Trims and joins exported clips"},
		{Name: "FFprobe", Command: cfg.Export.FFprobeBinary, Description: "Probes source duration and streams"},
	}
}
