package sapling

import "math"

// Timer calls Trigger once Timeout seconds of process time have accumulated.
// A single-shot timer then goes inactive; a repeating timer starts over.
type Timer struct {
	Timeout    float64
	Trigger    func()
	SingleShot bool

	countdown float64
	node      *Node
}

// NewTimer creates a timer and the node that drives it. Add the node to a
// Scene or the App for the timer to run.
func NewTimer(name string, timeout float64, trigger func(), singleShot bool) (*Timer, *Node) {
	n := NewNode(name)
	n.Type = NodeTypeTimer
	n.Visible = false
	t := &Timer{Timeout: timeout, Trigger: trigger, SingleShot: singleShot, node: n}
	n.OnProcess = t.process
	n.UserData = t
	return t, n
}

// Node returns the node driving the timer.
func (t *Timer) Node() *Node {
	return t.node
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool {
	return t.countdown < t.Timeout || !t.SingleShot
}

// Elapsed returns the time accumulated since the last reset.
func (t *Timer) Elapsed() float64 {
	return t.countdown
}

// Reset restarts the countdown. A spent single-shot timer becomes active again.
func (t *Timer) Reset() {
	t.countdown = 0
}

func (t *Timer) process(dt float64, _ *Scene) {
	if !t.Active() {
		return
	}
	t.countdown += dt
	if t.countdown < t.Timeout {
		return
	}
	if t.Trigger != nil {
		t.Trigger()
	}
	if t.SingleShot {
		t.countdown = math.Inf(1)
	} else {
		t.Reset()
	}
}
