package clip

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Mixer is the audio output shared by all handles. Streamers added with Play are
// mixed together, so a fading clip and a starting clip sound at the same time.
type Mixer interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer) error
	// Lock and Unlock guard state read by the mixer while it streams.
	Lock()
	Unlock()
}

// Verify Speaker implements Mixer at compile time.
var _ Mixer = (*Speaker)(nil)

// Speaker is the beep speaker, initialized on first Play.
type Speaker struct {
	rate   beep.SampleRate
	buffer time.Duration

	once sync.Once
	err  error
}

// NewSpeaker configures the speaker. Nothing touches the device until Play.
func NewSpeaker(sampleRate int, buffer time.Duration) *Speaker {
	return &Speaker{rate: beep.SampleRate(sampleRate), buffer: buffer}
}

func (s *Speaker) SampleRate() beep.SampleRate { return s.rate }

func (s *Speaker) Play(st beep.Streamer) error {
	s.once.Do(func() {
		s.err = speaker.Init(s.rate, s.rate.N(s.buffer))
	})
	if s.err != nil {
		return s.err
	}
	speaker.Play(st)
	return nil
}

func (s *Speaker) Lock() { speaker.Lock() }

func (s *Speaker) Unlock() { speaker.Unlock() }

// Close releases the audio device if it was opened.
func (s *Speaker) Close() {
	s.once.Do(func() {})
	if s.err == nil {
		speaker.Close()
	}
}
