package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Samal2005/sound-chat/internal/config"
	"github.com/Samal2005/sound-chat/pkg/device"
	"github.com/Samal2005/sound-chat/pkg/modem"
	"github.com/Samal2005/sound-chat/pkg/session"
)

var (
	sendAmplitude float64
	sendLoopback  bool
	sendDelay     time.Duration
)

var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Transmit an ASCII message through the speakers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if sendAmplitude > 0 {
			cfg.Amplitude = sendAmplitude
		}
		msg := args[0]

		if sendLoopback {
			return runLoopback(cfg, msg)
		}

		if sendDelay > 0 {
			logger.Info("starting transmission", "in", sendDelay)
			time.Sleep(sendDelay)
		}
		s := &session.Sender{
			Device:    &device.PortAudio{SampleRate: cfg.SampleRate},
			Modulator: cfg.NewModulator(),
			Logger:    logger,
		}
		return s.Send(msg)
	},
}

// runLoopback modulates and demodulates through an in-process device, a
// quick self-test of the protocol parameters without any hardware.
func runLoopback(cfg config.Config, msg string) error {
	frame, err := modem.EncodeFrame(msg)
	if err != nil {
		return err
	}
	pcm := cfg.NewModulator().Modulate(frame)
	logger.Info("loopback self-test", "symbols", len(frame), "samples", len(pcm))

	decoded, err := session.Echo(&device.Loopback{}, pcm, cfg.NewDemodulator(), cfg.Timeout())
	if err != nil {
		return err
	}
	printMessage(decoded)
	return nil
}

func init() {
	sendCmd.Flags().Float64Var(&sendAmplitude, "amplitude", 0, "playback amplitude, 0..1 (default 0.8)")
	sendCmd.Flags().BoolVar(&sendLoopback, "loopback", false, "decode in-process instead of playing audio")
	sendCmd.Flags().DurationVar(&sendDelay, "delay", 3*time.Second, "wait before transmitting so the receiver can be started")
	rootCmd.AddCommand(sendCmd)
}
