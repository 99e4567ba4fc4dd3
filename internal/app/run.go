// internal/app/run.go
package app

import (
	"errors"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/clip"
	"github.com/llehouerou/botonera/internal/config"
	"github.com/llehouerou/botonera/internal/errmsg"
	"github.com/llehouerou/botonera/internal/keymap"
	"github.com/llehouerou/botonera/internal/logging"
	"github.com/llehouerou/botonera/internal/playback"
	"github.com/llehouerou/botonera/internal/sched"
	"github.com/llehouerou/botonera/internal/state"
	"github.com/llehouerou/botonera/internal/stderr"
)

const httpTimeout = 15 * time.Second

// Options are the command-line overrides.
type Options struct {
	ConfigPath string
	Section    string
	Data       string
	Sounds     string
	StatePath  string
}

// Run loads the configuration, wires the board and blocks until it quits.
func Run(opts Options) (err error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	if opts.Data != "" {
		cfg.Data = opts.Data
	}
	if opts.Sounds != "" {
		cfg.SoundsDir = opts.Sounds
	}

	log, logCloser, err := logging.Setup(logging.Options{Level: cfg.GetLogLevel(), File: cfg.Log.File})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logCloser.Close()

	// Start capturing stderr before the speaker touches ALSA
	if err := stderr.Start(log); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	st, err := state.Open(opts.StatePath)
	if err != nil {
		log.Error().Err(err).Msg("state open failed")
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg(errmsg.Format(errmsg.OpSelectionSave, cerr))
		}
	}()

	loader, watchRoot, err := newLoader(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	loop := sched.NewLoop()
	defer loop.Close()

	spk := clip.NewSpeaker(cfg.GetSampleRate(), cfg.GetSpeakerBuffer())
	defer spk.Close()

	factory := clip.WithVolume(
		clip.BeepFactory(loop, spk, log.With().Str("component", "clip").Logger()),
		cfg.GetVolume(),
	)
	cache := clip.NewCache(cfg.GetSoundsDir(), factory)

	coord := playback.New(loop, cache, playback.Options{
		FadeDuration:     cfg.GetFadeDuration(),
		FrameInterval:    cfg.GetFrameInterval(),
		ProgressInterval: cfg.GetProgressInterval(),
		Logger:           log.With().Str("component", "playback").Logger(),
	})
	sub := coord.Subscribe()
	defer coord.Close()

	var (
		changes <-chan string
		watcher Watcher
	)
	if watchRoot != "" {
		w, err := catalog.Watch(watchRoot, loader.SectionsRef())
		if err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpCatalogWatch, err))
		} else {
			defer w.Close()
			changes = w.Changes()
			watcher = w
			go logWatchErrors(w.Errors(), log)
		}
	}

	log.Info().
		Str("data", cfg.GetDataRoot()).
		Str("sounds", cfg.GetSoundsDir()).
		Dur("fade", cfg.GetFadeDuration()).
		Msg("botonera starting")

	m := New(Deps{
		Player:         coord,
		Catalog:        loader,
		Preloader:      cache,
		State:          st,
		Events:         sub,
		Changes:        changes,
		Watcher:        watcher,
		Bindings:       keymap.WithCancelKey(keymap.All, cfg.GetCancelKey()),
		Section:        opts.Section,
		DefaultSection: cfg.DefaultSection,
		RedrawInterval: cfg.GetProgressInterval(),
		Logger:         log.With().Str("component", "ui").Logger(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	coord.CancelAll()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error().Err(err).Msg("board exited")
		return err
	}
	log.Info().Msg("botonera stopped")
	return nil
}

// newLoader builds the catalog loader for the configured data location and
// returns the directory to watch, empty for remote catalogs.
func newLoader(cfg *config.Config) (*catalog.Loader, string, error) {
	data := cfg.GetDataRoot()
	if catalog.IsRemote(data) {
		src, err := catalog.NewHTTPSource(data, &http.Client{Timeout: httpTimeout})
		if err != nil {
			return nil, "", err
		}
		return catalog.NewLoader(src, cfg.GetSectionsRef()), "", nil
	}
	return catalog.NewLoader(catalog.NewDirSource(data), cfg.GetSectionsRef()), data, nil
}

func logWatchErrors(errs <-chan error, log zerolog.Logger) {
	for err := range errs {
		log.Warn().Err(err).Msg("catalog watcher")
	}
}
