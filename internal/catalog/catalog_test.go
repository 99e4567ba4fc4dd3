package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sectionsJSON = `[
	{"title": "Party", "json": "./data/party.json"},
	{"title": "Memes", "json": "./data/memes.json"}
]`

const partyJSON = `[
	{"label": "Air horn", "file": "airhorn.mp3", "color": "red"},
	{"label": "Applause", "file": "applause.wav"}
]`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/sections.json": {Data: []byte(sectionsJSON)},
		"data/party.json":    {Data: []byte(partyJSON)},
		"data/broken.json":   {Data: []byte(`{"label": "not a list"}`)},
		"data/empty.json":    {Data: []byte(`[{"label": "", "file": "x.mp3"}]`)},
		"data/notitle.json":  {Data: []byte(`[{"title": "", "json": "x.json"}]`)},
	}
}

func TestLoader_Sections(t *testing.T) {
	l := NewLoader(NewFSSource(testFS()), "")

	sections, err := l.Sections(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []Section{
		{Title: "Party", Ref: "./data/party.json"},
		{Title: "Memes", Ref: "./data/memes.json"},
	}, sections)
	assert.Equal(t, DefaultSectionsRef, l.SectionsRef())
}

func TestLoader_Clips(t *testing.T) {
	l := NewLoader(NewFSSource(testFS()), "")

	clips, err := l.Clips(context.Background(), "./data/party.json")

	require.NoError(t, err)
	assert.Equal(t, []Clip{
		{Label: "Air horn", File: "airhorn.mp3", Color: "red"},
		{Label: "Applause", File: "applause.wav"},
	}, clips)
}

func TestLoader_Errors(t *testing.T) {
	l := NewLoader(NewFSSource(testFS()), "")
	ctx := context.Background()

	tests := []struct {
		name string
		load func() error
		want error
	}{
		{"missing document", func() error { _, err := l.Clips(ctx, "./data/memes.json"); return err }, ErrFetch},
		{"escaping reference", func() error { _, err := l.Clips(ctx, "../secret.json"); return err }, ErrFetch},
		{"wrong shape", func() error { _, err := l.Clips(ctx, "data/broken.json"); return err }, ErrInvalid},
		{"empty label", func() error { _, err := l.Clips(ctx, "data/empty.json"); return err }, ErrInvalid},
		{"section without title", func() error {
			_, err := NewLoader(NewFSSource(testFS()), "data/notitle.json").Sections(ctx)
			return err
		}, ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var loadErr *LoadError
			assert.True(t, errors.As(err, &loadErr))
		})
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	l := NewLoader(NewFSSource(testFS()), "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Sections(ctx)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/board/data/sections.json":
			_, _ = w.Write([]byte(sectionsJSON))
		case "/board/data/party.json":
			_, _ = w.Write([]byte(partyJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL+"/board", nil)
	require.NoError(t, err)
	l := NewLoader(src, "")
	ctx := context.Background()

	sections, err := l.Sections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	clips, err := l.Clips(ctx, sections[0].Ref)
	require.NoError(t, err)
	assert.Len(t, clips, 2)

	_, err = l.Clips(ctx, sections[1].Ref)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("http://localhost:8080"))
	assert.True(t, IsRemote("https://example.com/board"))
	assert.False(t, IsRemote("./web"))
	assert.False(t, IsRemote("/srv/board"))
}

func TestSameRef(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"./data/party.json", "data/party.json", true},
		{"data/./party.json", "data/party.json", true},
		{"/data/party.json", "data/party.json", true},
		{"data/party.json", "data/memes.json", false},
		{"../x.json", "../x.json", true},
	}
	for _, tt := range tests {
		if got := SameRef(tt.a, tt.b); got != tt.want {
			t.Errorf("SameRef(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
