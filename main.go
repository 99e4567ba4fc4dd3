package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/botonera/internal/app"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:     "botonera",
		Short:   "Terminal soundboard",
		Long:    `Play short sound clips from a grid of pads grouped in sections. Only one clip plays at a time.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ~/.config/botonera/config.toml)")
	f.StringVarP(&opts.Section, "section", "s", "", "start on the section with this title")
	f.StringVar(&opts.Data, "data", "", "directory or base URL holding the catalog documents")
	f.StringVar(&opts.Sounds, "sounds", "", "directory holding the audio files")
	f.StringVar(&opts.StatePath, "state", "", "state database path")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
