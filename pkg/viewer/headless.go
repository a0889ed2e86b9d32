package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner
type HeadlessConfig struct {
	Frames int      // Stop after this many frames (0 = run until ctx is done)
	Hz     int      // Frame rate limit (0 = as fast as possible)
	Script []Action // Actions applied in order, one before each frame
}

// RunHeadless renders frames without opening a window and returns the
// number of frames rendered
func RunHeadless(ctx context.Context, s *Session, cfg HeadlessConfig) (int, error) {
	if cfg.Hz < 0 {
		return 0, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	var tick <-chan time.Time
	if cfg.Hz > 0 {
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		tick = t.C
	}

	frames := 0
	for cfg.Frames == 0 || frames < cfg.Frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return frames, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return frames, err
		}

		if frames < len(cfg.Script) {
			if err := s.Apply(cfg.Script[frames]); err != nil {
				if errors.Is(err, ErrQuit) {
					return frames, nil
				}
				return frames, err
			}
		}

		if _, err := s.Frame(time.Now()); err != nil {
			return frames, err
		}
		frames++
	}
	return frames, nil
}
