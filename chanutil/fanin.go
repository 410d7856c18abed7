// Package chanutil provides composition helpers built on top of
// chanx.Channel: fan-in, fan-out, and a close/drain signal for external
// collaborators. None of these change Channel or Selector semantics;
// they are ordinary consumers of the public contract.
package chanutil

import (
	"golang.org/x/sync/errgroup"

	"github.com/example/chanselect/chanx"
)

// Merge fans multiple input channels into a single out channel: every
// value received from any in is forwarded to out, in the order it
// arrives from that input. out is closed once every input has been
// closed and drained.
func Merge[T any](out *chanx.Channel[T], ins ...*chanx.Channel[T]) {
	var g errgroup.Group

	for _, in := range ins {
		in := in
		g.Go(func() error {
			in.Range(func(v T) bool {
				return out.Send(v)
			})
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		out.Close()
	}()
}
