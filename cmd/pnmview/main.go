package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mivey/pnm"
	"github.com/mivey/pnm/internal/logging"
	"github.com/mivey/pnm/internal/viewer"
)

var (
	logLevel string
	title    string
)

var rootCmd = &cobra.Command{
	Use:          "pnmview <file>",
	Short:        "Display a Netpbm (PBM/PGM/PPM) image in a window",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(logLevel)

		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		img, err := pnm.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}

		logging.Info().
			Str("format", img.Header.Format.String()).
			Int("width", img.Header.Width).
			Int("height", img.Header.Height).
			Int("max", img.Header.Max).
			Int("samples", len(img.Samples)).
			Msg("decoded image")

		return viewer.Run(img, title)
	},
}

func init() {
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&title, "title", "pnmview", "window title")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
