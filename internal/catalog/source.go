package catalog

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// Verify sources implement Source at compile time.
var (
	_ Source = (*DirSource)(nil)
	_ Source = (*HTTPSource)(nil)
)

// DirSource reads documents from a file tree.
type DirSource struct {
	fsys fs.FS
	root string
}

// NewDirSource reads documents under the directory root.
func NewDirSource(root string) *DirSource {
	return &DirSource{fsys: os.DirFS(root), root: root}
}

// NewFSSource reads documents from fsys.
func NewFSSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Root returns the directory this source reads, empty for an fs.FS source.
func (s *DirSource) Root() string { return s.root }

func (s *DirSource) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := cleanRef(ref)
	if err != nil {
		return nil, err
	}
	return s.fsys.Open(name)
}

// HTTPSource fetches documents relative to a base URL.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPSource fetches documents relative to baseURL. A nil client uses
// http.DefaultClient.
func NewHTTPSource(baseURL string, client *http.Client) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{base: u, client: client}, nil
}

func (s *HTTPSource) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	rel, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base.ResolveReference(rel).String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// IsRemote reports whether location is an http(s) URL rather than a directory.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// cleanRef turns a document reference like "./data/party.json" into an fs path.
func cleanRef(ref string) (string, error) {
	name := path.Clean(strings.TrimPrefix(ref, "/"))
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("invalid reference %q", ref)
	}
	return name, nil
}

// SameRef reports whether two references name the same document.
func SameRef(a, b string) bool {
	ca, errA := cleanRef(a)
	cb, errB := cleanRef(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}
