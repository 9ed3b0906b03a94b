package device

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// PortAudio is a duplex stream on the host's default capture and playback
// devices. It is the production Device on every desktop platform.
type PortAudio struct {
	SampleRate float64

	stream *portaudio.Stream
}

func (d *PortAudio) Start(callback func(in, out []int32)) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(1, 1, d.SampleRate, BufferSize, callback)
	if err != nil {
		_ = portaudio.Terminate()
		return fmt.Errorf("open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return fmt.Errorf("start audio stream: %w", err)
	}
	d.stream = stream
	return nil
}

func (d *PortAudio) Stop() error {
	if d.stream == nil {
		return nil
	}
	err := errors.Join(d.stream.Stop(), d.stream.Close(), portaudio.Terminate())
	d.stream = nil
	if err != nil {
		return fmt.Errorf("stop audio stream: %w", err)
	}
	return nil
}

// Info describes one host audio device for the devices listing.
type Info struct {
	Name           string
	InputChannels  int
	OutputChannels int
	SampleRate     float64
	DefaultInput   bool
	DefaultOutput  bool
}

// List enumerates the host's audio devices.
func List() ([]Info, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}
	defer portaudio.Terminate() //nolint:errcheck

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("list audio devices: %w", err)
	}
	defaultIn, _ := portaudio.DefaultInputDevice()
	defaultOut, _ := portaudio.DefaultOutputDevice()

	infos := make([]Info, 0, len(devices))
	for _, dev := range devices {
		infos = append(infos, Info{
			Name:           dev.Name,
			InputChannels:  dev.MaxInputChannels,
			OutputChannels: dev.MaxOutputChannels,
			SampleRate:     dev.DefaultSampleRate,
			DefaultInput:   defaultIn != nil && dev == defaultIn,
			DefaultOutput:  defaultOut != nil && dev == defaultOut,
		})
	}
	return infos, nil
}
