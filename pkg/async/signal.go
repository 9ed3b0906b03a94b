package async

// Signal is a one-shot notification channel. Chan must be called before any
// Notify can be observed; Notify and NotifyValue never block and every call
// after the first is a no-op, which makes them safe to call from an audio
// callback that keeps firing after the interesting event.
type Signal[T any] struct {
	ch   chan T
	done bool
}

// Chan arms the signal and returns the channel to wait on.
func (s *Signal[T]) Chan() <-chan T {
	if s.ch == nil {
		s.ch = make(chan T, 1)
	}
	return s.ch
}

// Notify fires the signal with the zero value. It reports whether this call
// was the one that fired it.
func (s *Signal[T]) Notify() bool {
	var zero T
	return s.NotifyValue(zero)
}

// NotifyValue fires the signal carrying v.
func (s *Signal[T]) NotifyValue(v T) bool {
	if s.ch == nil || s.done {
		return false
	}
	select {
	case s.ch <- v:
		s.done = true
		return true
	default:
		return false
	}
}
