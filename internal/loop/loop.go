// Package loop provides the frame loop and the shooter's state machine.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
)

// Simulation is anything the frame loop can drive.
type Simulation interface {
	Update(dt time.Duration, in input.State)
	Draw(r draw.Renderer)
	Running() bool
}

// InputSource is sampled once per frame.
type InputSource interface {
	Poll() input.State
}

// StreamSource reads held keys from a terminal input stream. The loop ends
// once the stream is closed.
type StreamSource struct {
	Stream *input.Stream
}

func (s StreamSource) Poll() input.State {
	return input.ReadInput(s.Stream)
}

func (s StreamSource) Closed() bool {
	return s.Stream.Closed()
}

// FrameClock turns frame timestamps into deltas.
type FrameClock struct {
	MaxDelta time.Duration // zero means MaxFrameDelta

	last    time.Time
	started bool
}

// Tick records now and returns the time since the previous tick. ok is
// false for the first tick and for stalls longer than MaxDelta; the caller
// skips the simulation step for such frames.
func (c *FrameClock) Tick(now time.Time) (dt time.Duration, ok bool) {
	if !c.started {
		c.started = true
		c.last = now
		return 0, false
	}
	dt = now.Sub(c.last)
	c.last = now

	limit := c.MaxDelta
	if limit <= 0 {
		limit = MaxFrameDelta
	}
	if dt < 0 || dt > limit {
		return dt, false
	}
	return dt, true
}

// RunOptions tunes Run. The zero value runs at TargetFPS.
type RunOptions struct {
	FrameTime time.Duration
	MaxDelta  time.Duration
}

// Run drives sim with the Input → Update → Draw cycle until it stops
// running, ctx is done or src reports it is closed. Only errors from
// presenting a frame are returned.
func Run(ctx context.Context, sim Simulation, src InputSource, r draw.Renderer, opts RunOptions) error {
	frameTime := opts.FrameTime
	if frameTime <= 0 {
		frameTime = targetFrameTime
	}
	clock := FrameClock{MaxDelta: opts.MaxDelta}
	closer, _ := src.(interface{ Closed() bool })

	for sim.Running() {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := src.Poll()

		// ===== UPDATE PHASE =====
		if dt, ok := clock.Tick(frameStart); ok {
			sim.Update(dt, in)
		}

		// ===== DRAW PHASE =====
		sim.Draw(r)
		if err := r.Present(); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		if closer != nil && closer.Closed() {
			return nil
		}

		// ===== FRAME TIMING =====
		wait := frameTime - time.Since(frameStart)
		if wait <= 0 {
			wait = 0
		}
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
	return nil
}
