//go:build windows

// Package stderr provides a no-op implementation for Windows.
// Windows audio libraries don't produce the same stderr noise as ALSA.
package stderr

import "github.com/rs/zerolog"

// Start is a no-op on Windows.
func Start(zerolog.Logger) error {
	return nil
}

// Stop is a no-op on Windows.
func Stop() {}
