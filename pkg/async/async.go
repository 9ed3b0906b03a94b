// Package async holds the small synchronization helpers the audio sessions
// are built on: promises for running a blocking step on its own goroutine,
// and one-shot signals for audio callbacks to report completion without ever
// blocking the real-time thread.
package async

// Promise runs f on a new goroutine and returns a channel that yields its
// result.
func Promise[R any](f func() R) <-chan R {
	out := make(chan R, 1)
	go func() {
		out <- f()
	}()
	return out
}

// Await blocks until the promise resolves.
func Await[R any](a <-chan R) R {
	return <-a
}

// Await0 blocks until a signal-only channel fires.
func Await0(a <-chan struct{}) {
	<-a
}
