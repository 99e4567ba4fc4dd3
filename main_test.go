package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-s", "Memes", "--data", "https://example.com/board", "--sounds", "/tmp/sfx"}))

	section, err := cmd.Flags().GetString("section")
	require.NoError(t, err)
	assert.Equal(t, "Memes", section)

	data, _ := cmd.Flags().GetString("data")
	assert.Equal(t, "https://example.com/board", data)
	sounds, _ := cmd.Flags().GetString("sounds")
	assert.Equal(t, "/tmp/sfx", sounds)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
