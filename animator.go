package animate

import "sync"

// EventSink receives a CompletionEvent each time a token finishes.
// See the ecs module for a Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event CompletionEvent)
}

// CompletionEvent describes a finished token.
type CompletionEvent struct {
	ViewID   uint32
	ViewName string
	Mode     Mode
	Count    int // number of animations in the token
}

// Animator creates tokens bound to an Executor and runs tokens that were
// dropped without being executed.
//
// Everything except the orphan queue is used from a single goroutine, the
// one that drives the executor. The queue is filled by the runtime's cleanup
// goroutine and drained by Update.
type Animator struct {
	exec  Executor
	sink  EventSink
	debug bool

	mu      sync.Mutex
	orphans []*tokenCore
}

// NewAnimator returns an Animator whose tokens run on exec.
// Panics if exec is nil.
//
// Tokens dropped without Execute are only run from Update. Scene calls it
// every frame; headless users (for example with InstantExecutor) must call
// Update themselves or create tokens inside Scope.
func NewAnimator(exec Executor) *Animator {
	if exec == nil {
		panic("animate: nil executor")
	}
	return &Animator{exec: exec}
}

// Executor returns the executor tokens are submitted to.
func (a *Animator) Executor() Executor {
	return a.exec
}

// Animate returns a token that runs anims on v one after another.
// Nothing changes on v until the token is executed.
func (a *Animator) Animate(v *View, anims ...Animation) *Token {
	return newToken(a, v, Sequential, anims)
}

// AnimateInParallel returns a token that runs anims on v all at once.
// Nothing changes on v until the token is executed.
func (a *Animator) AnimateInParallel(v *View, anims ...Animation) *Token {
	return newToken(a, v, Parallel, anims)
}

// NewToken returns a token for anims on v with the given mode.
func (a *Animator) NewToken(v *View, mode Mode, anims ...Animation) *Token {
	return newToken(a, v, mode, anims)
}

// SetEventSink sets the optional completion event sink. Pass nil to remove it.
func (a *Animator) SetEventSink(sink EventSink) {
	a.sink = sink
}

// SetDebugMode enables or disables debug logging to stderr.
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// Update runs every token that was garbage collected without being executed,
// in the order the runtime reported them. Call it once per frame from the
// goroutine that drives the executor.
func (a *Animator) Update() {
	a.mu.Lock()
	orphans := a.orphans
	a.orphans = nil
	a.mu.Unlock()

	for _, c := range orphans {
		if c.consumed {
			continue
		}
		a.debugf("running dropped token on %q", c.viewName)
		c.run(nil)
	}
}

// Pending returns the number of dropped tokens waiting for Update.
func (a *Animator) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.orphans)
}

// adopt queues a dropped token. Called from the runtime cleanup goroutine.
func (a *Animator) adopt(c *tokenCore) {
	if a == nil {
		return
	}
	a.mu.Lock()
	a.orphans = append(a.orphans, c)
	a.mu.Unlock()
}

func (a *Animator) emit(event CompletionEvent) {
	if a == nil || a.sink == nil {
		return
	}
	a.sink.EmitEvent(event)
}

// --- Scope ---

// Scope collects tokens whose run is guaranteed when the scope ends.
type Scope struct {
	animator *Animator
	tokens   []*Token
}

// Scope calls fn with a new Scope. When fn returns (or panics), every token
// created through the scope that was not executed is run with no completion
// handler, in creation order.
func (a *Animator) Scope(fn func(s *Scope)) {
	s := &Scope{animator: a}
	defer s.close()
	fn(s)
}

// Animate is Animator.Animate for a token owned by the scope.
func (s *Scope) Animate(v *View, anims ...Animation) *Token {
	return s.track(s.animator.Animate(v, anims...))
}

// AnimateInParallel is Animator.AnimateInParallel for a token owned by the scope.
func (s *Scope) AnimateInParallel(v *View, anims ...Animation) *Token {
	return s.track(s.animator.AnimateInParallel(v, anims...))
}

func (s *Scope) track(t *Token) *Token {
	s.tokens = append(s.tokens, t)
	return t
}

func (s *Scope) close() {
	for _, t := range s.tokens {
		t.Release()
	}
	s.tokens = nil
}
