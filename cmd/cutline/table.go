package main

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cutline/internal/project"
	"cutline/internal/timeline"
)

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

func rightAligned(columns ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, column := range columns {
		configs = append(configs, table.ColumnConfig{
			Number:      column,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	return configs
}

// renderSegmentTable lays out the kept segments with their source range and
// the virtual position each one starts at once earlier cuts collapse out.
func renderSegmentTable(list timeline.List) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"#", "Source Start", "Source End", "Virtual Start", "Length"})

	var virtualStart time.Duration
	for i, seg := range list {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			formatTimecode(seg.Start),
			formatTimecode(seg.End),
			formatTimecode(virtualStart),
			formatTimecode(seg.Duration()),
		})
		virtualStart += seg.Duration()
	}

	tw.SetColumnConfigs(rightAligned(1, 2, 3, 4, 5))
	return tw.Render()
}

// renderProjectTable lays out one row per project with its edited length.
func renderProjectTable(projects []*project.Project) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"ID", "Title", "Length", "Segments", "Source"})

	for _, proj := range projects {
		tw.AppendRow(table.Row{
			shortUUID(proj.UUID),
			proj.Title,
			formatTimecode(proj.Timeline.TotalDuration()),
			strconv.Itoa(len(proj.Timeline)),
			proj.SourcePath,
		})
	}

	tw.SetColumnConfigs(rightAligned(3, 4))
	return tw.Render()
}
