package session

import (
	"time"

	"github.com/Samal2005/sound-chat/pkg/async"
	"github.com/Samal2005/sound-chat/pkg/device"
	"github.com/Samal2005/sound-chat/pkg/modem"
)

// Echo plays a prepared waveform and decodes whatever the same device
// captures, sharing one callback. Over a device.Loopback this is a full
// self-test of the modem without touching hardware; the CLI uses it for the
// --loopback demo.
func Echo(dev device.Device, pcm []int32, demod *modem.Demodulator, timeout time.Duration) (modem.Message, error) {
	p := &player{track: pcm}
	var done async.Signal[error]
	ch := done.Chan()

	err := dev.Start(func(in, out []int32) {
		p.update(in, out)
		if finished, ferr := demod.Feed(in); finished {
			done.NotifyValue(ferr)
		}
	})
	if err != nil {
		return modem.Message{}, err
	}

	var decodeErr error
	select {
	case decodeErr = <-ch:
	case <-time.After(timeout):
	}

	if err := dev.Stop(); err != nil {
		return modem.Message{}, err
	}
	return demod.Finalize(), decodeErr
}
