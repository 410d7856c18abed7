package chanx

import (
	"testing"
	"time"
)

func runOrTimeout(t *testing.T, s *Selector) bool {
	t.Helper()

	done := make(chan bool, 1)
	go func() { done <- s.Run() }()

	select {
	case ok := <-done:
		return ok
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Run")
		return false
	}
}

// Scenario 6: three differently typed channels race; the one with a
// value wins and only its handler runs.
func TestSelectWithoutDefaultPicksReadyCase(t *testing.T) {
	a := New[int](1)
	b := New[bool](1)
	c := New[string](1)

	go c.Send("hi")

	var hA, hB, hC int
	var gotC string
	s := NewSelector()
	s = WithCase(s, a, func(int) { hA++ })
	s = WithCase(s, b, func(bool) { hB++ })
	s = WithCase(s, c, func(v string) { hC++; gotC = v })

	if !runOrTimeout(t, s) {
		t.Fatal("Run should return true")
	}
	if hA != 0 || hB != 0 || hC != 1 || gotC != "hi" {
		t.Fatalf("hA=%d hB=%d hC=%d gotC=%q, want hA=0 hB=0 hC=1 gotC=hi", hA, hB, hC, gotC)
	}
}

// Scenario 7: every channel closed, select-without-default returns false
// and invokes no handler.
func TestSelectWithoutDefaultAllClosed(t *testing.T) {
	a := New[int](0)
	b := New[int](0)
	c := New[int](0)
	a.Close()
	b.Close()
	c.Close()

	invoked := false
	s := NewSelector()
	s = WithCase(s, a, func(int) { invoked = true })
	s = WithCase(s, b, func(int) { invoked = true })
	s = WithCase(s, c, func(int) { invoked = true })

	if runOrTimeout(t, s) {
		t.Fatal("Run should return false")
	}
	if invoked {
		t.Fatal("no handler should run")
	}
}

// Scenario 8: with-default sweep picks the first ready channel in
// declaration order, skipping a closed one.
func TestSelectWithDefaultPicksReadyCase(t *testing.T) {
	a := New[int](0)
	b := New[int](0)
	c := New[string](1)
	a.Close()
	c.Send("v")

	var gotC string
	defaultRan := false
	s := NewSelector()
	s = WithCase(s, a, func(int) {})
	s = WithCase(s, b, func(int) {})
	s = WithCase(s, c, func(v string) { gotC = v })
	s = s.WithDefault(func() { defaultRan = true })

	if !runOrTimeout(t, s) {
		t.Fatal("Run should return true")
	}
	if gotC != "v" || defaultRan {
		t.Fatalf("gotC=%q defaultRan=%v, want gotC=v defaultRan=false", gotC, defaultRan)
	}
}

// Scenario 9: every channel closed, with-default returns false and the
// default is not invoked.
func TestSelectWithDefaultAllClosed(t *testing.T) {
	a := New[int](0)
	b := New[int](0)
	c := New[int](0)
	a.Close()
	b.Close()
	c.Close()

	defaultRan := false
	s := NewSelector()
	s = WithCase(s, a, func(int) {})
	s = WithCase(s, b, func(int) {})
	s = WithCase(s, c, func(int) {})
	s = s.WithDefault(func() { defaultRan = true })

	if runOrTimeout(t, s) {
		t.Fatal("Run should return false")
	}
	if defaultRan {
		t.Fatal("default should not run")
	}
}

// Scenario 10: one open-and-empty channel among closed ones triggers the
// default.
func TestSelectWithDefaultRunsWhenOpenButEmpty(t *testing.T) {
	a := New[int](0)
	b := New[int](0)
	c := New[int](0)
	a.Close()
	c.Close()
	// b stays open and empty.

	defaultRan := false
	s := NewSelector()
	s = WithCase(s, a, func(int) {})
	s = WithCase(s, b, func(int) {})
	s = WithCase(s, c, func(int) {})
	s = s.WithDefault(func() { defaultRan = true })

	if !runOrTimeout(t, s) {
		t.Fatal("Run should return true")
	}
	if !defaultRan {
		t.Fatal("default should have run")
	}
}

// Property 10: in select-without-default, exactly one handler runs per
// successful Run, and losing branches' channels are left untouched for a
// later receive.
func TestSelectWithoutDefaultCancelsLosers(t *testing.T) {
	winner := New[int](1)
	loser := New[int](0)
	winner.Send(1)

	invocations := 0
	s := NewSelector()
	s = WithCase(s, winner, func(int) { invocations++ })
	s = WithCase(s, loser, func(int) { invocations++ })

	if !runOrTimeout(t, s) {
		t.Fatal("Run should return true")
	}
	if invocations != 1 {
		t.Fatalf("invocations = %d, want 1", invocations)
	}

	// The losing branch's cancellation must not have consumed anything
	// from loser — it is still open and empty.
	if !loser.IsOpen() {
		t.Fatal("loser channel should remain open")
	}
	_, state := loser.TryReceive()
	if state != StateWouldBlock {
		t.Fatalf("loser state = %v, want StateWouldBlock", state)
	}

	// A later send on loser should still be deliverable normally.
	go loser.Send(99)
	v, ok := recvOrTimeout(t, loser)
	if !ok || v != 99 {
		t.Fatalf("got (%d, %v), want (99, true)", v, ok)
	}
}

func TestSelectRunWithoutDefaultAndNoCases(t *testing.T) {
	s := NewSelector()
	if runOrTimeout(t, s) {
		t.Fatal("Run with zero cases should return false")
	}
}

func TestSelectNilChannelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil channel")
		}
	}()
	var ch *Channel[int]
	WithCase(NewSelector(), ch, func(int) {})
}

func TestSelectNilHandlerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil handler")
		}
	}()
	WithCase(NewSelector(), New[int](0), nil)
}

// The builder is immutable: adding a case must not affect a previously
// built Selector.
func TestSelectorBuilderImmutable(t *testing.T) {
	base := NewSelector()
	a := New[int](1)
	a.Send(1)

	extended := WithCase(base, a, func(int) {})

	if len(base.cases) != 0 {
		t.Fatalf("base selector mutated: %d cases", len(base.cases))
	}
	if len(extended.cases) != 1 {
		t.Fatalf("extended selector has %d cases, want 1", len(extended.cases))
	}
}
