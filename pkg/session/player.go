package session

import (
	"github.com/Samal2005/sound-chat/pkg/async"
)

// tailTicks is how many extra callback buffers of silence are emitted after
// the track before playback counts as finished, so the device drains its
// internal latency before the stream is torn down.
const tailTicks = 4

// player feeds one prepared PCM track into a device output, then fires done.
type player struct {
	track []int32
	idx   int
	tail  int
	done  async.Signal[struct{}]
}

func (p *player) update(in, out []int32) {
	n := copy(out, p.track[p.idx:])
	p.idx += n
	for i := n; i < len(out); i++ {
		out[i] = 0
	}
	if p.idx >= len(p.track) {
		p.tail++
		if p.tail > tailTicks {
			p.done.Notify()
		}
	}
}
