// Package catalog loads the soundboard's sections and the clips of each section
// from JSON documents served by a directory or an HTTP server.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultSectionsRef is the sections document of a stock data directory.
const DefaultSectionsRef = "data/sections.json"

var (
	// ErrFetch means the document could not be read.
	ErrFetch = errors.New("fetch failed")
	// ErrInvalid means the document is not a valid list of the expected entries.
	ErrInvalid = errors.New("invalid document")
)

// LoadError is returned for every failed load. It wraps ErrFetch or ErrInvalid.
type LoadError struct {
	Ref string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Ref, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Section is one entry of the sections document.
type Section struct {
	Title string `json:"title"`
	Ref   string `json:"json"`
}

// Clip is one pad of a section.
type Clip struct {
	Label string `json:"label"`
	File  string `json:"file"`
	Color string `json:"color,omitempty"`
}

// Source opens documents by reference.
type Source interface {
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}

// Loader reads sections and clips from a Source.
type Loader struct {
	src         Source
	sectionsRef string
}

// NewLoader creates a loader. An empty sectionsRef uses DefaultSectionsRef.
func NewLoader(src Source, sectionsRef string) *Loader {
	if sectionsRef == "" {
		sectionsRef = DefaultSectionsRef
	}
	return &Loader{src: src, sectionsRef: sectionsRef}
}

// SectionsRef returns the reference of the sections document.
func (l *Loader) SectionsRef() string { return l.sectionsRef }

// Sections returns the sections in document order.
func (l *Loader) Sections(ctx context.Context) ([]Section, error) {
	var sections []Section
	if err := l.decode(ctx, l.sectionsRef, &sections); err != nil {
		return nil, err
	}
	for i, s := range sections {
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Ref) == "" {
			return nil, &LoadError{
				Ref: l.sectionsRef,
				Err: fmt.Errorf("%w: section %d needs a title and a json reference", ErrInvalid, i),
			}
		}
	}
	return sections, nil
}

// Clips returns the clips of the section document ref, in document order.
func (l *Loader) Clips(ctx context.Context, ref string) ([]Clip, error) {
	var clips []Clip
	if err := l.decode(ctx, ref, &clips); err != nil {
		return nil, err
	}
	for i, c := range clips {
		if strings.TrimSpace(c.Label) == "" || strings.TrimSpace(c.File) == "" {
			return nil, &LoadError{
				Ref: ref,
				Err: fmt.Errorf("%w: clip %d needs a label and a file", ErrInvalid, i),
			}
		}
	}
	return clips, nil
}

func (l *Loader) decode(ctx context.Context, ref string, v any) error {
	rc, err := l.src.Open(ctx, ref)
	if err != nil {
		return &LoadError{Ref: ref, Err: fmt.Errorf("%w: %v", ErrFetch, err)}
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return &LoadError{Ref: ref, Err: fmt.Errorf("%w: %v", ErrInvalid, err)}
	}
	return nil
}
