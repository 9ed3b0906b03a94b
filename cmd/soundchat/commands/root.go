// Package commands implements the soundchat CLI.
package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Samal2005/sound-chat/internal/config"
)

var (
	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	configPath  string
	sampleRate  float64
	bitDuration float64
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "soundchat",
	Short: "Exchange short text messages between two machines over sound",
	Long: `soundchat turns text into audible FSK tones and back.

Run "soundchat send" on one machine and "soundchat listen" on another within
earshot. Both sides must use the same protocol parameters; share a config
file or the same flags, there is no in-band negotiation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "protocol config file (YAML)")
	pf.Float64Var(&sampleRate, "sample-rate", 0, "audio sample rate in Hz (default 44100)")
	pf.Float64Var(&bitDuration, "bit-duration", 0, "seconds per symbol (default 0.1)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig resolves the protocol parameters: file values when --config is
// given, then flag overrides on top.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	if bitDuration > 0 {
		cfg.BitDuration = bitDuration
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error(err.Error())
	}
	return err
}
