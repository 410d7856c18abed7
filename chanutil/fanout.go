package chanutil

import (
	"golang.org/x/sync/errgroup"

	"github.com/example/chanselect/chanx"
)

// Split fans a single in channel out to every channel in outs: each value
// received from in is sent to every out, in parallel, before the next
// value is received. Every out is closed once in is closed and drained.
func Split[T any](in *chanx.Channel[T], outs ...*chanx.Channel[T]) {
	go func() {
		in.Range(func(v T) bool {
			var g errgroup.Group
			for _, out := range outs {
				out := out
				g.Go(func() error {
					out.Send(v)
					return nil
				})
			}
			_ = g.Wait()
			return true
		})

		for _, out := range outs {
			out.Close()
		}
	}()
}
