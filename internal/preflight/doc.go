// Package preflight provides readiness checks for the filesystem paths
// and external binaries an export depends on.
//
// The checks run in two contexts:
//   - The CLI "cutline export" command calls RunExport before invoking
//     ffmpeg, so a doomed run fails fast instead of mid-encode.
//   - The CLI "cutline doctor" command uses the individual check
//     functions together with the deps package to display system health.
package preflight
