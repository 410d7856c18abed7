package chanutil

import "github.com/example/chanselect/chanx"

// WaitClosed returns a native Go channel that closes once ch has been
// closed and fully drained, letting an external collaborator observe
// completion without polling ch itself. WaitClosed does the draining: it
// receives and discards every value from ch.
func WaitClosed[T any](ch *chanx.Channel[T]) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ch.Range(func(T) bool { return true })
	}()
	return done
}
