// Package progress samples a playing clip on a fixed interval and renders its
// elapsed and remaining time into a UI binding.
package progress

import (
	"time"

	"github.com/llehouerou/botonera/internal/clip"
	"github.com/llehouerou/botonera/internal/sched"
)

// DefaultInterval is the delay between two samples.
const DefaultInterval = 100 * time.Millisecond

// Binding receives progress for one pad.
type Binding interface {
	// SetProgress receives the played percentage in [0, 100].
	SetProgress(pct float64)
	SetTimeLabel(label string)
}

// Reporter starts progress tasks. Methods must be called on the scheduler thread.
type Reporter struct {
	sched    sched.Scheduler
	interval time.Duration
}

// NewReporter creates a reporter sampling every interval (DefaultInterval if <= 0).
func NewReporter(s sched.Scheduler, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{sched: s, interval: interval}
}

// Task is one running progress loop.
type Task struct {
	r       *Reporter
	handle  clip.Handle
	binding Binding
	timer   sched.Timer
	live    bool
}

// Start renders h into b immediately and then on every interval until Cancel.
func (r *Reporter) Start(h clip.Handle, b Binding) *Task {
	t := &Task{r: r, handle: h, binding: b, live: true}
	t.tick()
	return t
}

// Cancel stops the task. A tick already queued sees the task dead and does
// nothing. Calling Cancel again is a no-op.
func (t *Task) Cancel() {
	if t == nil || !t.live {
		return
	}
	t.live = false
	if t.timer != nil {
		t.timer.Stop()
	}
}

// Live reports whether the task is still rendering.
func (t *Task) Live() bool { return t != nil && t.live }

func (t *Task) tick() {
	if !t.live {
		return
	}
	render(t.handle, t.binding)
	t.timer = t.r.sched.After(t.r.interval, t.tick)
}

func render(h clip.Handle, b Binding) {
	pos := h.Position()
	dur, known := h.Duration()
	if pct, ok := Percent(pos, dur, known); ok {
		b.SetProgress(pct)
	}
	b.SetTimeLabel(Label(pos, dur, known))
}
