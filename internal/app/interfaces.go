// internal/app/interfaces.go
package app

import (
	"context"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/clip"
	"github.com/llehouerou/botonera/internal/playback"
	"github.com/llehouerou/botonera/internal/progress"
)

// Player is the playback surface the board drives.
type Player interface {
	Toggle(button playback.Button, id clip.ID, b progress.Binding)
	CancelAll()
}

// Catalog provides sections and their clips.
type Catalog interface {
	SectionsRef() string
	Sections(ctx context.Context) ([]catalog.Section, error)
	Clips(ctx context.Context, ref string) ([]catalog.Clip, error)
}

// Preloader warms the clip cache.
type Preloader interface {
	Preload(ids ...clip.ID)
}

// Watcher follows catalog documents on disk.
type Watcher interface {
	Add(ref string) error
}

// Verify implementations at compile time.
var (
	_ Player    = (*playback.Coordinator)(nil)
	_ Catalog   = (*catalog.Loader)(nil)
	_ Preloader = (*clip.Cache)(nil)
	_ Watcher   = (*catalog.Watcher)(nil)
)
