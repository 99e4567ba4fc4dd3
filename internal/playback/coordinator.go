// Package playback coordinates the soundboard's single playback slot: at most
// one pad plays at a time, pressing it again stops it, pressing another pad
// hands over with a fade-out, and natural ends or external cancels return the
// board to idle.
package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/llehouerou/botonera/internal/clip"
	"github.com/llehouerou/botonera/internal/fade"
	"github.com/llehouerou/botonera/internal/progress"
	"github.com/llehouerou/botonera/internal/sched"
)

// DefaultFadeDuration is the fade-out applied when a session is retired.
const DefaultFadeDuration = 300 * time.Millisecond

// Button is the pad that owns a session. It is compared by identity, so
// implementations must be comparable (typically a pointer).
type Button interface {
	SetPlaying(playing bool)
}

// Resolver returns the handle for a clip.
type Resolver interface {
	Get(id clip.ID) clip.Handle
}

// session is the active {handle, binding, button} tuple.
type session struct {
	id        uuid.UUID
	clipID    clip.ID
	button    Button
	binding   progress.Binding
	handle    clip.Handle
	progress  *progress.Task
	startedAt time.Time
}

func (s *session) info() Info {
	return Info{ID: s.id, Clip: s.clipID, StartedAt: s.startedAt}
}

// Options configures a Coordinator.
type Options struct {
	FadeDuration     time.Duration
	FrameInterval    time.Duration
	ProgressInterval time.Duration
	Logger           zerolog.Logger
}

// Coordinator is the single owner of the current session. Its state lives on the
// scheduler thread; the exported methods hop onto it, so they may be called from
// any goroutine except a scheduler callback.
type Coordinator struct {
	sched    sched.Scheduler
	clips    Resolver
	fades    *fade.Controller
	reporter *progress.Reporter
	fadeFor  time.Duration
	log      zerolog.Logger

	current *session

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool
}

// New creates a coordinator resolving clips through r.
func New(s sched.Scheduler, r Resolver, opts Options) *Coordinator {
	fadeFor := opts.FadeDuration
	if fadeFor < 0 {
		fadeFor = 0
	}
	return &Coordinator{
		sched:    s,
		clips:    r,
		fades:    fade.NewController(s, fade.WithFrameInterval(opts.FrameInterval)),
		reporter: progress.NewReporter(s, opts.ProgressInterval),
		fadeFor:  fadeFor,
		log:      opts.Logger,
	}
}

// Toggle handles a press on button bound to clip id, rendering progress into b.
func (c *Coordinator) Toggle(button Button, id clip.ID, b progress.Binding) {
	c.sched.Do(func() { c.toggle(button, id, b) })
}

// CancelAll stops whatever is playing. It is a no-op when idle.
func (c *Coordinator) CancelAll() {
	c.sched.Do(func() { c.stop(EndCancelled) })
}

// State returns the current state.
func (c *Coordinator) State() State {
	var st State
	c.sched.Do(func() {
		if c.current != nil {
			st = StateActive
		}
	})
	return st
}

// Current returns the active session, if any.
func (c *Coordinator) Current() (Info, bool) {
	var (
		info Info
		ok   bool
	)
	c.sched.Do(func() {
		if c.current != nil {
			info, ok = c.current.info(), true
		}
	})
	return info, ok
}

func (c *Coordinator) toggle(button Button, id clip.ID, b progress.Binding) {
	h := c.clips.Get(id)

	if cur := c.current; cur != nil {
		if cur.button == button && cur.handle.Playing() {
			c.stop(EndToggled)
			return
		}
		c.stop(EndSuperseded)
	}

	c.start(button, id, h, b)
}

// start runs the start sequence from Idle.
func (c *Coordinator) start(button Button, id clip.ID, h clip.Handle, b progress.Binding) {
	// The handle may still be fading out from a retired session
	c.fades.Cancel(h)
	h.Seek(0)
	button.SetPlaying(true)

	s := &session{
		id:        uuid.New(),
		clipID:    id,
		button:    button,
		binding:   b,
		handle:    h,
		startedAt: c.sched.Now(),
	}
	c.current = s
	h.OnEnded(func() { c.ended(s) })
	s.progress = c.reporter.Start(h, b)

	if err := h.Play(); err != nil {
		c.log.Warn().Err(err).Str("clip", string(id)).Msg("play rejected")
		c.emitError(ErrorEvent{Clip: id, Err: err})
		c.stop(EndRejected)
		return
	}

	c.log.Debug().Str("clip", string(id)).Str("session", s.id.String()).Msg("session started")
	c.emitStarted(SessionStarted{Session: s.info()})
}

// ended is the completion hook of session s.
func (c *Coordinator) ended(s *session) {
	if c.current != s {
		c.log.Debug().Str("clip", string(s.clipID)).Msg("stale completion ignored")
		return
	}
	if err := s.handle.Err(); err != nil {
		// Accepted earlier but the clip never became playable
		c.log.Warn().Err(err).Str("clip", string(s.clipID)).Msg("play failed")
		c.emitError(ErrorEvent{Clip: s.clipID, Err: err})
		c.stop(EndRejected)
		return
	}
	c.stop(EndCompleted)
}

// stop runs the stop sequence on the current session.
func (c *Coordinator) stop(reason EndReason) {
	s := c.current
	if s == nil {
		return
	}

	c.fades.FadeOutAndStop(s.handle, c.fadeFor)
	s.progress.Cancel()
	s.handle.OnEnded(nil)
	s.button.SetPlaying(false)
	c.current = nil

	c.log.Debug().
		Str("clip", string(s.clipID)).
		Str("session", s.id.String()).
		Stringer("reason", reason).
		Msg("session ended")
	c.emitEnded(SessionEnded{Session: s.info(), Reason: reason})
}

// Subscribe creates a new event subscription.
func (c *Coordinator) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Close stops playback and closes all subscriptions.
func (c *Coordinator) Close() error {
	c.CancelAll()

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	return nil
}

func (c *Coordinator) emitStarted(e SessionStarted) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendStarted(e)
	}
}

func (c *Coordinator) emitEnded(e SessionEnded) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendEnded(e)
	}
}

func (c *Coordinator) emitError(e ErrorEvent) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}
