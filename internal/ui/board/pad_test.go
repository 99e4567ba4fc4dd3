package board

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/clip"
)

func TestPad_SetPlayingResetsProgress(t *testing.T) {
	p := NewPad(catalog.Clip{Label: "Airhorn", File: "airhorn.mp3", Color: "red"})

	p.SetPlaying(true)
	p.SetProgress(40)
	p.SetTimeLabel("0:02 / 0:05 · -0:03")
	p.SetPlaying(false)

	s := p.State()
	assert.False(t, s.Playing)
	assert.InDelta(t, 40.0, s.Percent, 1e-9, "stopping keeps the last sample")

	p.SetPlaying(true)
	s = p.State()
	assert.True(t, s.Playing)
	assert.Zero(t, s.Percent)
	assert.Empty(t, s.TimeLabel)
	assert.Equal(t, "Airhorn", s.Label)
	assert.Equal(t, "red", s.Color)
}

func TestPad_ClipID(t *testing.T) {
	p := NewPad(catalog.Clip{Label: "Boo", File: "crowd/boo.wav"})
	assert.Equal(t, clip.ID("crowd/boo.wav"), p.ClipID())
}

func TestNewPads(t *testing.T) {
	pads := NewPads([]catalog.Clip{
		{Label: "A", File: "a.mp3"},
		{Label: "B", File: "b.mp3"},
	})
	assert.Len(t, pads, 2)
	assert.Equal(t, []clip.ID{"a.mp3", "b.mp3"}, ClipIDs(pads))
	assert.False(t, AnyPlaying(pads))

	pads[1].SetPlaying(true)
	assert.True(t, AnyPlaying(pads))
}

func TestPad_ConcurrentWrites(t *testing.T) {
	p := NewPad(catalog.Clip{Label: "A", File: "a.mp3"})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.SetProgress(float64(i))
			p.SetTimeLabel("x")
			_ = p.State()
		}()
	}
	wg.Wait()
	assert.Equal(t, "x", p.State().TimeLabel)
}
