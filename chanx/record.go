package chanx

import "sync/atomic"

// receiveResult is the two-valued outcome of a receive: a value was
// obtained, or it was not (channel closed-and-empty, or the receive was
// cancelled by a losing select branch). The caller cannot and need not
// distinguish those two absent cases.
type receiveResult[T any] struct {
	value T
	ok    bool
}

// receiveRecord is a pending-receive entry in a Channel's receive-queue.
// hook is nil for a plain Receive and non-nil when the receive belongs to
// a Selector's arbitration group: the matcher must consult it before
// matching the record with a sender.
type receiveRecord[T any] struct {
	hook    func() bool
	result  chan receiveResult[T]
	settled atomic.Bool
}

func newReceiveRecord[T any](hook func() bool) *receiveRecord[T] {
	return &receiveRecord[T]{hook: hook, result: make(chan receiveResult[T], 1)}
}

// settle marks the record completed exactly once; later calls are no-ops.
func (r *receiveRecord[T]) settle(value T, ok bool) {
	if !r.settled.CompareAndSwap(false, true) {
		return
	}
	r.result <- receiveResult[T]{value: value, ok: ok}
}

func (r *receiveRecord[T]) wait() (T, bool) {
	res := <-r.result
	return res.value, res.ok
}

// selectable reports whether this record may still be matched: a plain
// receive is always selectable, and an arbitration-grouped receive is
// selectable only if its hook succeeds, i.e. this call is the one that
// claims the still-unclaimed token. The matcher removes the record from
// the queue before consulting it, so the hook runs at most once per
// record.
func (r *receiveRecord[T]) selectable() bool {
	return r.hook == nil || r.hook()
}

// sendRecord is a pending-send entry in a Channel's send-queue. The first
// capacity entries are "buffered": already settled true, but still
// occupying a queue slot until a receiver consumes the value.
type sendRecord[T any] struct {
	value   T
	result  chan bool
	settled atomic.Bool
}

func newSendRecord[T any](value T) *sendRecord[T] {
	return &sendRecord[T]{value: value, result: make(chan bool, 1)}
}

func (s *sendRecord[T]) settle(ok bool) {
	if !s.settled.CompareAndSwap(false, true) {
		return
	}
	s.result <- ok
}

func (s *sendRecord[T]) wait() bool {
	return <-s.result
}
