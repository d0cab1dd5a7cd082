// Package cmd implements the neu CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neu-ui/neu/cmd/neu/internal/config"
	"github.com/neu-ui/neu/cmd/neu/internal/logging"
	"github.com/neu-ui/neu/pkg/surface"
	"github.com/neu-ui/neu/pkg/theme"
)

// Version is set at build time.
var Version = "0.1.0-dev"

var (
	flagVerbose bool
	flagProfile string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "neu",
	Short: "neu computes neumorphic surface styles",
	Long: `neu is a toolbox around the neumorphic style engine: it computes
button and card styles for a given interaction state, renders PNG
previews of the resulting shadows, and ships an interactive demo.

Styles are pure functions of pressed/hovered/visible flags, a scroll
progress value in [0,1], and a light or dark palette.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(flagVerbose, os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "path to a neu.yaml profile (default: ./neu.yaml if present)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadProfile resolves the profile from --profile or the working directory.
func loadProfile() (*config.Resolved, error) {
	var (
		p   *config.Profile
		err error
	)
	if flagProfile != "" {
		p, err = config.Load(flagProfile)
	} else {
		p, err = config.LoadOptional(".")
	}
	if err != nil {
		return nil, err
	}
	return p.Resolve()
}

// overrideBrightness applies a --theme flag on top of the profile.
func overrideBrightness(r *config.Resolved, flag string) error {
	if flag == "" {
		return nil
	}
	b, err := theme.ParseBrightness(flag)
	if err != nil {
		return err
	}
	r.Brightness = b
	return nil
}

// overrideVariant applies a --variant flag on top of the profile.
func overrideVariant(r *config.Resolved, flag string) error {
	if flag == "" {
		return nil
	}
	v, err := surface.ParseVariant(flag)
	if err != nil {
		return err
	}
	r.Variant = v
	return nil
}
