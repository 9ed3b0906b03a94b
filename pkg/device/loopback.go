package device

import "time"

// Loopback is an in-process device that feeds every output buffer back as
// the next input buffer, so a sender and receiver sharing one callback hear
// each other without hardware. With SampleRate zero the loop free-runs as
// fast as the callback allows, which is what tests want.
type Loopback struct {
	SampleRate float64 // paced buffers per second when non-zero

	done    chan struct{}
	stopped chan struct{}
}

func (d *Loopback) Start(callback func(in, out []int32)) error {
	d.done = make(chan struct{})
	d.stopped = make(chan struct{})
	go func() {
		defer close(d.stopped)

		buf := [2][]int32{make([]int32, BufferSize), make([]int32, BufferSize)}
		swap := false
		update := func() {
			if swap {
				callback(buf[0], buf[1])
			} else {
				callback(buf[1], buf[0])
			}
			swap = !swap
		}

		if d.SampleRate == 0 {
			for {
				select {
				case <-d.done:
					return
				default:
					update()
				}
			}
		}

		interval := time.Duration(float64(time.Second) * BufferSize / d.SampleRate)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-d.done:
				return
			case <-ticker.C:
				update()
			}
		}
	}()
	return nil
}

// Stop ends the loop and waits for the callback goroutine to exit, so the
// caller may inspect state the callback was touching.
func (d *Loopback) Stop() error {
	close(d.done)
	<-d.stopped
	return nil
}
