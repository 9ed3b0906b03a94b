package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Samal2005/sound-chat/pkg/async"
	"github.com/Samal2005/sound-chat/pkg/device"
	"github.com/Samal2005/sound-chat/pkg/modem"
)

// ErrNoStartTone is returned when the capture window closes without the
// start tone ever being detected; the session outcome is StatusNotFound.
var ErrNoStartTone = errors.New("no start tone detected within timeout")

// DefaultTimeout bounds a receive session when the caller does not say
// otherwise.
const DefaultTimeout = 30 * time.Second

// Receiver runs one blocking capture-and-classify loop. The audio callback
// feeds captured buffers straight into the demodulator; the session ends
// when the demodulator reaches a terminal state or the timeout elapses,
// whichever comes first. Timeouts never discard progress: whatever was
// decoded is returned with a Partial or NotFound status.
type Receiver struct {
	Device      device.Device
	Demodulator *modem.Demodulator
	Timeout     time.Duration // 0 means DefaultTimeout
	Logger      *log.Logger
}

// Listen captures until the frame completes, the timeout passes, or ctx is
// cancelled. The returned message is always valid; the error reports why the
// session fell short of StatusComplete, with ErrNoStartTone and
// modem.ErrCorruptedSymbol the expected kinds.
func (r *Receiver) Listen(ctx context.Context) (modem.Message, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r.logger().Info("listening", "timeout", timeout)

	var done async.Signal[error]
	ch := done.Chan()
	cb := func(in, out []int32) {
		for i := range out {
			out[i] = 0
		}
		if finished, err := r.Demodulator.Feed(in); finished {
			done.NotifyValue(err)
		}
	}
	if err := r.Device.Start(cb); err != nil {
		return modem.Message{}, fmt.Errorf("capture: %w", err)
	}

	var decodeErr error
	select {
	case decodeErr = <-ch:
	case <-ctx.Done():
	}

	stopErr := r.Device.Stop()
	msg := r.Demodulator.Finalize()

	switch {
	case decodeErr != nil:
		r.logger().Warn("decoding aborted", "err", decodeErr, "chars", r.Demodulator.Chars())
		return msg, decodeErr
	case stopErr != nil:
		return msg, fmt.Errorf("capture: %w", stopErr)
	case msg.Status == modem.StatusNotFound:
		return msg, ErrNoStartTone
	case msg.Status == modem.StatusPartial:
		r.logger().Warn("transmission cut short", "chars", r.Demodulator.Chars())
		return msg, nil
	default:
		r.logger().Info("message received", "chars", r.Demodulator.Chars())
		return msg, nil
	}
}

func (r *Receiver) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
