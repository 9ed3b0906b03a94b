// Package session runs the one-shot, single-process transfer sessions on
// top of the modem and an audio device: a sender blocks for the length of
// one playback, a receiver blocks for one timeout-bounded capture. There is
// no concurrency across sessions and no state that outlives them.
package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Samal2005/sound-chat/pkg/async"
	"github.com/Samal2005/sound-chat/pkg/device"
	"github.com/Samal2005/sound-chat/pkg/modem"
)

// Sender encodes a message, synthesizes the whole waveform up front and
// plays it as one blocking operation. Nothing is emitted for an invalid
// message: the encode step fails before the device is touched.
type Sender struct {
	Device    device.Device
	Modulator *modem.Modulator
	Logger    *log.Logger
}

func (s *Sender) Send(msg string) error {
	frame, err := modem.EncodeFrame(msg)
	if err != nil {
		return err
	}
	pcm := s.Modulator.Modulate(frame)
	airTime := time.Duration(float64(len(pcm)) / s.Modulator.Config.SampleRate * float64(time.Second))
	s.logger().Info("transmitting",
		"chars", len(msg),
		"symbols", len(frame),
		"samples", len(pcm),
		"air_time", airTime.Round(time.Millisecond))

	if err := Play(s.Device, pcm); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	s.logger().Info("transmission finished")
	return nil
}

func (s *Sender) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// Play writes one PCM buffer to the device and blocks until the device has
// consumed it, input is discarded.
func Play(dev device.Device, pcm []int32) error {
	p := &player{track: pcm}
	ch := p.done.Chan()
	if err := dev.Start(p.update); err != nil {
		return err
	}
	async.Await0(ch)
	return dev.Stop()
}
