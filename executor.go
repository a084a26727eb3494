package animate

// Executor performs a single animation on a view and reports when the visual
// transition ends. It is the boundary to the host animation engine.
//
// Submit must call done exactly once. done must be called on the goroutine
// that drives the executor (for TweenExecutor, the one calling Update);
// tokens and Run rely on completions being delivered serially.
type Executor interface {
	Submit(v *View, a Animation, done func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(v *View, a Animation, done func())

// Submit calls f(v, a, done).
func (f ExecutorFunc) Submit(v *View, a Animation, done func()) {
	f(v, a, done)
}

// InstantExecutor applies each animation's end state immediately and
// completes synchronously, ignoring durations. Use it when animations are
// disabled or when no game loop is running.
type InstantExecutor struct{}

// Submit applies a to v and calls done before returning.
func (InstantExecutor) Submit(v *View, a Animation, done func()) {
	if v != nil && !v.IsDisposed() {
		a.Apply(v)
		v.MarkDirty()
	}
	done()
}
