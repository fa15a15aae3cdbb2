package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-drift/refresh/pkg/config"
	drifterrors "github.com/go-drift/refresh/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	verbose    bool
	configPath string

	rootCmd = &cobra.Command{
		Use:   "refreshkit",
		Short: "Pull to refresh and load more trigger engines",
		Long: `refreshkit drives the header and footer refresh engines outside of a UI.

Use "replay" to run scripted scroll traces and check the callbacks they
produce, "demo" to try the engines in an interactive terminal list, and
"config" to print the configuration read from refresh.yaml.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

func init() {
	// Logs go to stderr so replay output on stdout stays machine readable.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging, including engine state transitions")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a refresh.yaml (default: ./refresh.yaml when present)")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.Version = Version
	rootCmd.Annotations = map[string]string{"built": BuildTime}
	rootCmd.SetVersionTemplate("{{printf \"%s %s (built %s)\\n\" .DisplayName .Version (index .Annotations \"built\")}}")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func setup(*cobra.Command, []string) error {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	drifterrors.SetHandler(&drifterrors.LogHandler{Logger: logrus.StandardLogger(), Verbose: verbose})
	return nil
}

// loadConfig reads --config, or refresh.yaml in the working directory when
// the flag is unset.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadOptional(".")
}
