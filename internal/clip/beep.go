package clip

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/rs/zerolog"

	"github.com/llehouerou/botonera/internal/sched"
)

// Verify beepHandle implements Handle at compile time.
var _ Handle = (*beepHandle)(nil)

// beepHandle plays a clip decoded into memory.
//
// All fields are owned by the scheduler thread. The active voice is also read
// by the mixer goroutine; its fields change only under the mixer lock.
type beepHandle struct {
	id      ID
	locator string
	sched   sched.Scheduler
	mixer   Mixer
	log     zerolog.Logger

	loaded  bool
	loadErr error
	buffer  *beep.Buffer

	pos     int // in samples, valid while voice is nil
	level   float64
	pending bool  // Play was accepted before loading finished
	failErr error // why the last accepted play ended silently
	voice   *voice
	onEnded func()
}

// BeepFactory returns a Factory creating handles that decode clips in the
// background and play them through m.
func BeepFactory(s sched.Scheduler, m Mixer, log zerolog.Logger) Factory {
	return func(id ID, locator string) Handle {
		return newBeepHandle(id, locator, s, m, log)
	}
}

func newBeepHandle(id ID, locator string, s sched.Scheduler, m Mixer, log zerolog.Logger) *beepHandle {
	h := &beepHandle{
		id:      id,
		locator: locator,
		sched:   s,
		mixer:   m,
		log:     log.With().Str("clip", string(id)).Logger(),
		level:   1,
	}
	go h.load()
	return h
}

func (h *beepHandle) load() {
	started := time.Now()
	buf, err := loadBuffer(h.locator, h.mixer.SampleRate())
	elapsed := time.Since(started)
	h.sched.Post(func() { h.finishLoad(buf, err, elapsed) })
}

func (h *beepHandle) finishLoad(buf *beep.Buffer, err error, elapsed time.Duration) {
	h.loaded = true
	h.buffer = buf
	h.loadErr = err
	if err != nil {
		h.log.Warn().Err(err).Str("path", h.locator).Msg("clip load failed")
	} else {
		h.log.Debug().Dur("took", elapsed).Int("samples", buf.Len()).Msg("clip loaded")
	}

	if !h.pending {
		return
	}
	h.pending = false
	if err == nil {
		err = h.start()
	} else {
		err = fmt.Errorf("%w: %v", ErrRejected, err)
	}
	if err != nil {
		// A play that was accepted earlier cannot fail synchronously anymore;
		// end it and leave the reason in Err.
		h.failErr = err
		h.fireEnded()
	}
}

func (h *beepHandle) ID() ID { return h.id }

func (h *beepHandle) Play() error {
	h.reapVoice()
	if h.voice != nil {
		return nil
	}
	h.failErr = nil
	if !h.loaded {
		h.pending = true
		return nil
	}
	if h.loadErr != nil {
		return fmt.Errorf("%w: %v", ErrRejected, h.loadErr)
	}
	return h.start()
}

func (h *beepHandle) start() error {
	if h.pos >= h.buffer.Len() {
		h.pos = 0
	}
	src := h.buffer.Streamer(0, h.buffer.Len())
	if err := src.Seek(h.pos); err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}

	v := &voice{
		src: src,
		vol: &effects.Volume{
			Streamer: src,
			Base:     2,
			Volume:   levelToVolume(h.level),
			Silent:   h.level <= 0,
		},
	}
	v.ended = func() {
		h.sched.Post(func() { h.voiceEnded(v) })
	}

	if err := h.mixer.Play(v); err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	h.voice = v
	return nil
}

// reapVoice drops a voice the mixer has exhausted but whose end callback has
// not run yet. The queued voiceEnded then finds another voice, or none, and
// does nothing.
func (h *beepHandle) reapVoice() {
	v := h.voice
	if v == nil {
		return
	}
	h.mixer.Lock()
	exhausted := v.stopped
	h.mixer.Unlock()
	if exhausted {
		h.voice = nil
		h.pos = h.buffer.Len()
	}
}

func (h *beepHandle) voiceEnded(v *voice) {
	if h.voice != v {
		return
	}
	h.voice = nil
	h.pos = h.buffer.Len()
	h.fireEnded()
}

func (h *beepHandle) fireEnded() {
	if h.onEnded != nil {
		h.onEnded()
	}
}

func (h *beepHandle) Pause() {
	h.pending = false
	v := h.voice
	if v == nil {
		return
	}
	h.mixer.Lock()
	h.pos = v.src.Position()
	v.stopped = true
	h.mixer.Unlock()
	h.voice = nil
}

func (h *beepHandle) Playing() bool {
	return h.voice != nil || h.pending
}

func (h *beepHandle) Loading() bool { return h.pending }

func (h *beepHandle) Err() error { return h.failErr }

func (h *beepHandle) Position() time.Duration {
	rate := h.mixer.SampleRate()
	if v := h.voice; v != nil {
		h.mixer.Lock()
		n := v.src.Position()
		h.mixer.Unlock()
		return rate.D(n)
	}
	return rate.D(h.pos)
}

func (h *beepHandle) Seek(pos time.Duration) {
	n := max(h.mixer.SampleRate().N(pos), 0)
	if h.buffer != nil {
		n = min(n, h.buffer.Len())
	} else {
		// Nothing to clamp against yet; only a rewind is meaningful.
		n = 0
	}

	h.reapVoice()
	if v := h.voice; v != nil {
		h.mixer.Lock()
		_ = v.src.Seek(n)
		h.mixer.Unlock()
		return
	}
	h.pos = n
}

func (h *beepHandle) Duration() (time.Duration, bool) {
	if h.buffer == nil {
		return 0, false
	}
	return h.mixer.SampleRate().D(h.buffer.Len()), true
}

func (h *beepHandle) Volume() float64 { return h.level }

func (h *beepHandle) SetVolume(level float64) {
	h.level = clampLevel(level)
	if v := h.voice; v != nil {
		h.mixer.Lock()
		v.vol.Volume = levelToVolume(h.level)
		v.vol.Silent = h.level <= 0
		h.mixer.Unlock()
	}
}

func (h *beepHandle) OnEnded(fn func()) { h.onEnded = fn }

var _ beep.Streamer = (*voice)(nil)

// voice is one run of a handle through the mixer. Once stopped it reports
// exhaustion so the mixer drops it.
type voice struct {
	src     beep.StreamSeeker
	vol     *effects.Volume
	stopped bool
	ended   func() // runs on the mixer goroutine; must not take the mixer lock
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.stopped {
		return 0, false
	}
	n, ok = v.vol.Stream(samples)
	if !ok {
		v.stopped = true
		v.ended()
	}
	return n, ok
}

func (v *voice) Err() error { return v.src.Err() }
