package renderer

import (
	"fmt"
	"time"
)

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	Pixels     int           // Pixels written
	Hits       int           // Primary rays that hit a shape
	ShadowRays int           // Shadow rays traced, one per light per hit
	Duration   time.Duration // Wall time spent shading
}

// HitRatio returns the fraction of pixels that hit a shape
func (s FrameStats) HitRatio() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Pixels)
}

// PixelsPerSecond returns the shading throughput of the frame
func (s FrameStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Duration.Seconds()
}

func (s FrameStats) String() string {
	return fmt.Sprintf("%d pixels, %d hits (%.1f%%), %d shadow rays in %v",
		s.Pixels, s.Hits, 100*s.HitRatio(), s.ShadowRays, s.Duration.Round(time.Microsecond))
}
