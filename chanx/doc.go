// Package chanx implements a typed, bounded, FIFO channel and a multi-way
// select combinator over it, from scratch: the queues, matching and closed
// state are implemented directly, not on top of a native Go `chan` or
// `select`. Native channels appear only as one-shot completion signals for
// pending send/receive records and as the result queue of a Selector race.
//
// Channel[T] is a mutex-guarded FIFO with two internal wait queues (pending
// senders and pending receivers) and a monotonic open/closed status. Send
// and Receive block; TryReceive never does. Close drains every blocked
// receiver and every sender that had not yet buffered a value, while
// leaving already-buffered values retrievable.
//
// Selector waits on several Channels at once. With a default handler
// registered it performs a synchronous, non-blocking sweep in declaration
// order; without one it races a goroutine per case, arbitrated by a
// single-assignment token so exactly one branch wins and every other
// branch's pending receive is cancelled.
package chanx
