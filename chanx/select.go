package chanx

// caseRunner type-erases a Channel[T] + handler pair so a single Selector
// can hold cases over channels of different element types, e.g. racing
// an int channel, a bool channel, and a string channel together.
type caseRunner interface {
	trySweep() sweepOutcome
	begin(hook func() bool) pendingCase
}

// sweepOutcome is the result of one case's contribution to a with-default
// synchronous sweep.
type sweepOutcome struct {
	matched     bool
	closedEmpty bool
	thunk       func()
}

// pendingCase is a case's in-flight receive, begun but not yet waited on.
type pendingCase interface {
	wait() (thunk func(), ok bool)
	cancel()
}

// Selector is an immutable collection of receive cases and an optional
// default handler, awaiting Run. WithCase and WithDefault each return a
// new Selector; the one passed in is left unmodified, so a partially built
// Selector can never be mutated out from under a concurrent caller.
type Selector struct {
	cases   []caseRunner
	withDef bool
	def     func()
}

// NewSelector returns an empty Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// WithCase returns a new Selector with one more case: if ch yields a
// value, handler is invoked with it. ch and handler must be non-nil.
//
// WithCase is a free function, not a method, because Go methods cannot
// introduce a type parameter that the receiver type does not already
// carry — Selector itself stays non-generic so it can mix cases over
// differently typed channels.
func WithCase[T any](s *Selector, ch *Channel[T], handler func(T)) *Selector {
	if ch == nil {
		panic(ErrNilChannel)
	}
	if handler == nil {
		panic(ErrNilHandler)
	}

	next := &Selector{
		cases:   append(append([]caseRunner{}, s.cases...), typedCase[T]{ch: ch, handler: handler}),
		withDef: s.withDef,
		def:     s.def,
	}
	return next
}

// WithDefault returns a new Selector that runs handler synchronously
// whenever Run finds no case immediately ready and at least one case's
// channel is still open. handler must be non-nil.
func (s *Selector) WithDefault(handler func()) *Selector {
	if handler == nil {
		panic(ErrNilHandler)
	}

	return &Selector{
		cases:   append([]caseRunner{}, s.cases...),
		withDef: true,
		def:     handler,
	}
}

// Run executes the Selector once.
//
// Without a default: Run blocks until one case's channel yields a value
// (its handler is invoked exactly once and Run returns true) or every
// channel is closed-and-empty (no handler runs, Run returns false).
//
// With a default: Run performs a non-blocking sweep over cases in
// declaration order. The first case with an immediately available value
// wins. If every channel is closed-and-empty, the default does not run
// and Run returns false. Otherwise the default handler runs and Run
// returns true.
func (s *Selector) Run() bool {
	if s.withDef {
		return s.runSync()
	}
	return s.runAsync()
}

func (s *Selector) runSync() bool {
	allClosed := true

	for _, c := range s.cases {
		out := c.trySweep()
		if out.matched {
			out.thunk()
			return true
		}
		if !out.closedEmpty {
			allClosed = false
		}
	}

	if allClosed {
		return false
	}
	s.def()
	return true
}

func (s *Selector) runAsync() bool {
	n := len(s.cases)
	if n == 0 {
		return false
	}

	token := newArbitrationToken()
	pending := make([]pendingCase, n)
	for i, c := range s.cases {
		pending[i] = c.begin(token.tryClaim)
	}

	results := make(chan *func(), n)
	for i := range s.cases {
		i := i
		go func() {
			thunk, ok := pending[i].wait()
			if !ok {
				results <- nil
				return
			}
			for j, p := range pending {
				if j != i {
					p.cancel()
				}
			}
			t := thunk
			results <- &t
		}()
	}

	for range s.cases {
		if t := <-results; t != nil {
			(*t)()
			return true
		}
	}
	return false
}

// typedCase is the generic realization of caseRunner for a single
// Channel[T].
type typedCase[T any] struct {
	ch      *Channel[T]
	handler func(T)
}

func (c typedCase[T]) trySweep() sweepOutcome {
	v, state := c.ch.TryReceive()
	switch state {
	case StateValue:
		value := v
		return sweepOutcome{matched: true, thunk: func() { c.handler(value) }}
	case StateClosedEmpty:
		return sweepOutcome{closedEmpty: true}
	default: // StateWouldBlock
		return sweepOutcome{}
	}
}

func (c typedCase[T]) begin(hook func() bool) pendingCase {
	return &typedPendingCase[T]{ch: c.ch, rec: c.ch.beginReceive(hook), handler: c.handler}
}

type typedPendingCase[T any] struct {
	ch      *Channel[T]
	rec     *receiveRecord[T]
	handler func(T)
}

func (p *typedPendingCase[T]) wait() (func(), bool) {
	v, ok := p.rec.wait()
	if !ok {
		return nil, false
	}
	value := v
	return func() { p.handler(value) }, true
}

func (p *typedPendingCase[T]) cancel() {
	p.ch.cancelPendingReceive(p.rec)
}
