// Package board renders the soundboard: section tabs, the pad grid and the
// help overlay.
package board

import (
	"sync"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/clip"
	"github.com/llehouerou/botonera/internal/playback"
	"github.com/llehouerou/botonera/internal/progress"
)

// Pad is one button of the board. The coordinator writes to it from the
// scheduler goroutine while the view reads it from the UI goroutine.
type Pad struct {
	clip catalog.Clip

	mu        sync.Mutex
	playing   bool
	percent   float64
	timeLabel string
}

var (
	_ playback.Button  = (*Pad)(nil)
	_ progress.Binding = (*Pad)(nil)
)

// NewPad creates a pad for c.
func NewPad(c catalog.Clip) *Pad {
	return &Pad{clip: c}
}

// NewPads creates one pad per clip, in order.
func NewPads(clips []catalog.Clip) []*Pad {
	pads := make([]*Pad, len(clips))
	for i, c := range clips {
		pads[i] = NewPad(c)
	}
	return pads
}

func (p *Pad) Clip() catalog.Clip { return p.clip }

// ClipID is the cache key of the pad's clip.
func (p *Pad) ClipID() clip.ID { return clip.ID(p.clip.File) }

// SetPlaying toggles the playing visual. Turning it on clears the previous
// session's progress.
func (p *Pad) SetPlaying(playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = playing
	if playing {
		p.percent = 0
		p.timeLabel = ""
	}
}

func (p *Pad) SetProgress(pct float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.percent = pct
}

func (p *Pad) SetTimeLabel(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timeLabel = label
}

// PadState is a consistent snapshot of a pad for rendering.
type PadState struct {
	Label     string
	Color     string
	Playing   bool
	Percent   float64 // 0..100
	TimeLabel string
}

// State returns a snapshot of the pad.
func (p *Pad) State() PadState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PadState{
		Label:     p.clip.Label,
		Color:     p.clip.Color,
		Playing:   p.playing,
		Percent:   p.percent,
		TimeLabel: p.timeLabel,
	}
}

// Playing reports the playing visual.
func (p *Pad) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// AnyPlaying reports whether any of pads shows the playing visual.
func AnyPlaying(pads []*Pad) bool {
	for _, p := range pads {
		if p.Playing() {
			return true
		}
	}
	return false
}

// ClipIDs returns the cache keys of pads, in order.
func ClipIDs(pads []*Pad) []clip.ID {
	ids := make([]clip.ID, len(pads))
	for i, p := range pads {
		ids[i] = p.ClipID()
	}
	return ids
}
