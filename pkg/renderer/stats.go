package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats records what a single worker contributed to a frame
type WorkerStats struct {
	ID         int
	Rows       int
	Samples    int64
	RenderTime time.Duration
}

// RenderStats contains statistics about a finished frame
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Seed            int64
	TotalSamples    int64
	RenderTime      time.Duration
	Workers         []WorkerStats
}

// SamplesPerSecond returns the camera-ray throughput of the frame
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// Table builds a tabular representation of the per-worker statistics.
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Samples", "Render time"})
	for _, stat := range s.Workers {
		percent := 0.0
		if s.Height > 0 {
			percent = 100 * float64(stat.Rows) / float64(s.Height)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%02.1f %%", percent),
			fmt.Sprintf("%d", stat.Samples),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", s.RenderTime.String()})

	table.Render()
	return buf.String()
}
