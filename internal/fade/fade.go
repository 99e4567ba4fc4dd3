// Package fade ramps a clip's volume to zero before stopping it.
//
// A fade runs as its own chain of frame ticks on the scheduler, detached from
// whoever started it, so a new clip can start while a retired one fades out.
package fade

import (
	"time"

	"github.com/llehouerou/botonera/internal/clip"
	"github.com/llehouerou/botonera/internal/sched"
)

// DefaultFrameInterval paces volume updates at roughly display refresh rate.
const DefaultFrameInterval = time.Second / 60

// Controller starts and supersedes fades. It keeps at most one fade per handle.
// Methods must be called on the scheduler thread.
type Controller struct {
	sched  sched.Scheduler
	frame  time.Duration
	active map[clip.Handle]*Task
}

// Option configures a Controller.
type Option func(*Controller)

// WithFrameInterval sets the delay between volume updates.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.frame = d
		}
	}
}

// NewController creates a fade controller ticking on s.
func NewController(s sched.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		sched:  s,
		frame:  DefaultFrameInterval,
		active: make(map[clip.Handle]*Task),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Task is one scheduled fade-out.
type Task struct {
	c           *Controller
	handle      clip.Handle
	startVolume float64
	duration    time.Duration
	startedAt   time.Time
	lastElapsed time.Duration
	timer       sched.Timer
	live        bool
}

// FadeOutAndStop ramps h from its current volume to zero over d, then pauses
// it, rewinds it and restores the volume. It returns immediately.
//
// A fade already running on h is superseded. The restored volume stays the one
// captured by the first fade, so chained fades never leave h quieter.
//
// A handle still loading makes no sound, so it is stopped at once and the
// returned task is already done. Otherwise the load could finish mid-fade and
// start audio on a retired handle.
func (c *Controller) FadeOutAndStop(h clip.Handle, d time.Duration) *Task {
	startVolume := h.Volume()
	if prev, ok := c.active[h]; ok {
		startVolume = prev.startVolume
		prev.stop()
	}

	t := &Task{
		c:           c,
		handle:      h,
		startVolume: startVolume,
		duration:    d,
		startedAt:   c.sched.Now(),
		live:        true,
	}
	if h.Loading() {
		t.finish()
		return t
	}
	c.active[h] = t
	t.timer = c.sched.After(c.frame, t.tick)
	return t
}

// Cancel supersedes the fade running on h, if any, without stopping h, and
// restores the volume captured when the fade began. It reports whether a fade
// was running.
func (c *Controller) Cancel(h clip.Handle) bool {
	t, ok := c.active[h]
	if !ok {
		return false
	}
	t.stop()
	h.SetVolume(t.startVolume)
	return true
}

// Active reports whether a fade is running on h.
func (c *Controller) Active(h clip.Handle) bool {
	_, ok := c.active[h]
	return ok
}

// Live reports whether the task is still ticking.
func (t *Task) Live() bool { return t.live }

// StartVolume returns the volume captured when the fade began.
func (t *Task) StartVolume() float64 { return t.startVolume }

func (t *Task) tick() {
	if !t.live {
		return
	}

	elapsed := max(t.c.sched.Now().Sub(t.startedAt), t.lastElapsed)
	t.lastElapsed = elapsed

	progress := 1.0
	if t.duration > 0 {
		progress = min(float64(elapsed)/float64(t.duration), 1)
	}

	t.handle.SetVolume(t.startVolume * (1 - progress))
	if progress < 1 {
		t.timer = t.c.sched.After(t.c.frame, t.tick)
		return
	}

	t.finish()
}

// finish ends the task and leaves the handle paused, rewound and at its
// original volume.
func (t *Task) finish() {
	t.stop()
	t.handle.Pause()
	t.handle.Seek(0)
	t.handle.SetVolume(t.startVolume)
}

func (t *Task) stop() {
	if !t.live {
		return
	}
	t.live = false
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.c.active[t.handle] == t {
		delete(t.c.active, t.handle)
	}
}
