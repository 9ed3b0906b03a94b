//go:build windows

package device

import "github.com/xsjk/go-asio"

// ASIO drives one input and one output channel of a named ASIO interface.
// Low-latency Windows audio stacks expose themselves this way; everywhere
// else PortAudio is the right choice.
type ASIO struct {
	DeviceName string
	SampleRate float64
	InChannel  int
	OutChannel int

	device asio.Device
}

func (a *ASIO) Start(callback func(in, out []int32)) error {
	a.device.Load(a.DeviceName)
	a.device.SetSampleRate(a.SampleRate)
	a.device.Open()
	a.device.Start(func(in, out [][]int32) {
		callback(in[a.InChannel], out[a.OutChannel])
	})
	return nil
}

func (a *ASIO) Stop() error {
	a.device.Stop()
	a.device.Close()
	a.device.Unload()
	return nil
}
