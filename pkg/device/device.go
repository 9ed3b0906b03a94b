// Package device is the audio boundary of the protocol: opaque mono PCM
// sources and sinks. Implementations drive a duplex callback with one input
// and one output buffer per tick; everything above this package treats the
// hardware as a blocking byte pump.
package device

// Device is a mono duplex audio stream at a fixed sample rate. Start invokes
// the callback repeatedly with the captured input buffer and an output buffer
// to fill; both hold full-scale int32 samples. Stop tears the stream down and
// returns only after the callback can no longer be invoked.
type Device interface {
	Start(callback func(in, out []int32)) error
	Stop() error
}

// BufferSize is the number of samples handed to the callback per tick.
const BufferSize = 512
