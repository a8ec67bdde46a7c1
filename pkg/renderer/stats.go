package renderer

import "time"

// RenderStats contains statistics about a finished render
type RenderStats struct {
	RenderID    string        // Unique ID shared with the render's log lines
	TotalPixels int           // Total number of pixels rendered
	TotalTiles  int           // Number of tiles the canvas was split into
	NumWorkers  int           // Number of parallel workers used
	Duration    time.Duration // Wall time of the render
}

// PixelsPerSecond returns the render throughput, or 0 for an instant render
func (rs RenderStats) PixelsPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalPixels) / rs.Duration.Seconds()
}
