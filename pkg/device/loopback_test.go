package device

import (
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

// Every input buffer must be exactly the previous output buffer.
func TestLoopback(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	lastOutput := make([]int32, BufferSize)

	var dev Device = &Loopback{SampleRate: 48000}

	tick := 0
	err := dev.Start(func(in, out []int32) {
		if !reflect.DeepEqual(in, lastOutput) {
			t.Errorf("tick %d: input does not match previous output", tick)
		}
		if tick%2 == 0 {
			randi32(r, out)
		} else {
			cleari32(out)
		}
		copy(lastOutput, out)
		tick++
	})
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(50 * time.Millisecond)
	if err := dev.Stop(); err != nil {
		t.Fatal(err)
	}
	if tick == 0 {
		t.Fatal("callback never ran")
	}
}

// Stop must not return while the callback can still fire.
func TestLoopbackStopIsSynchronous(t *testing.T) {
	var running atomic.Bool
	dev := &Loopback{}
	err := dev.Start(func(in, out []int32) {
		running.Store(true)
		defer running.Store(false)
		time.Sleep(time.Millisecond)
	})
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(5 * time.Millisecond)
	if err := dev.Stop(); err != nil {
		t.Fatal(err)
	}
	if running.Load() {
		t.Fatal("callback still running after Stop returned")
	}
}
