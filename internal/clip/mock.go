// internal/clip/mock.go
package clip

import "time"

// Mock is a test double for Handle.
type Mock struct {
	id       ID
	playing  bool
	position time.Duration
	duration time.Duration
	known    bool
	volume   float64
	playErr  error
	failErr  error
	loading  bool
	onEnded  func()

	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
	volumes    []float64
}

// NewMock creates an idle mock handle at full volume with an unknown duration.
func NewMock(id ID) *Mock {
	return &Mock{id: id, volume: 1}
}

func (m *Mock) ID() ID { return m.id }

func (m *Mock) Play() error {
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	m.failErr = nil
	m.playing = true
	return nil
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.playing = false
}

func (m *Mock) Playing() bool { return m.playing }

// Loading reports a play accepted while the clip is marked as loading.
func (m *Mock) Loading() bool { return m.playing && m.loading }

func (m *Mock) Err() error { return m.failErr }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Seek(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) Duration() (time.Duration, bool) { return m.duration, m.known }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) SetVolume(level float64) {
	m.volume = clampLevel(level)
	m.volumes = append(m.volumes, m.volume)
}

func (m *Mock) OnEnded(fn func()) { m.onEnded = fn }

// Test helpers

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SetDuration makes the duration known.
func (m *Mock) SetDuration(d time.Duration) {
	m.duration = d
	m.known = true
}

func (m *Mock) SetPlaying(playing bool) { m.playing = playing }

// SetLoading marks the clip as still loading, so accepted plays stay silent.
func (m *Mock) SetLoading(loading bool) { m.loading = loading }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// Volumes returns every level passed to SetVolume, in order.
func (m *Mock) Volumes() []float64 { return m.volumes }

func (m *Mock) HasEndedHook() bool { return m.onEnded != nil }

// SimulateEnded simulates the clip reaching its end: the handle stops and the
// registered hook fires.
func (m *Mock) SimulateEnded() {
	m.playing = false
	m.position = m.duration
	if m.onEnded != nil {
		m.onEnded()
	}
}

// SimulateFailure simulates an accepted play failing later, like a load error:
// the handle stops, Err reports err and the hook fires.
func (m *Mock) SimulateFailure(err error) {
	m.playing = false
	m.loading = false
	m.failErr = err
	if m.onEnded != nil {
		m.onEnded()
	}
}

// Verify Mock implements Handle at compile time.
var _ Handle = (*Mock)(nil)
