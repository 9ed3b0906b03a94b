package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Samal2005/sound-chat/pkg/device"
	"github.com/Samal2005/sound-chat/pkg/modem"
	"github.com/Samal2005/sound-chat/pkg/session"
)

var (
	listenTimeout   time.Duration
	listenThreshold float64
	listenStrict    bool
)

var messageStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1).
	Border(lipgloss.RoundedBorder())

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Capture from the microphone and decode one message",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if listenTimeout > 0 {
			cfg.TimeoutSeconds = listenTimeout.Seconds()
		}
		if listenThreshold > 0 {
			cfg.NoiseThreshold = listenThreshold
		}
		cfg.Strict = cfg.Strict || listenStrict

		r := &session.Receiver{
			Device:      &device.PortAudio{SampleRate: cfg.SampleRate},
			Demodulator: cfg.NewDemodulator(),
			Timeout:     cfg.Timeout(),
			Logger:      logger,
		}
		msg, err := r.Listen(context.Background())
		if errors.Is(err, modem.ErrCorruptedSymbol) {
			// show what survived, then fail
			printMessage(msg)
			return err
		}
		if err != nil {
			return err
		}
		printMessage(msg)
		return nil
	},
}

func printMessage(msg modem.Message) {
	if msg.Status != modem.StatusComplete {
		logger.Warn("message incomplete", "status", msg.Status.String())
	}
	fmt.Println(messageStyle.Render(msg.Text))
}

func init() {
	listenCmd.Flags().DurationVarP(&listenTimeout, "timeout", "t", 0, "capture timeout (default 30s)")
	listenCmd.Flags().Float64Var(&listenThreshold, "threshold", 0, "classifier noise threshold, 0..1 (default 0.5)")
	listenCmd.Flags().BoolVar(&listenStrict, "strict", false, "abort on corrupted symbols instead of guessing")
	rootCmd.AddCommand(listenCmd)
}
