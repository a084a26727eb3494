package animate

import (
	"runtime"
	"weak"
)

// Token is a one-shot handle over a batch of animations on one view. Nothing
// happens to the view until the token is executed, either directly with
// Execute or as part of Run.
//
// A token executes at most once. A token that becomes unreachable without
// ever being executed is still run, with no completion handler, on the next
// Animator.Update: the view ends up in the state its animations describe even
// if the caller dropped the token. Use Animator.Scope or Release when that
// point needs to be deterministic.
//
// The token refers to its view weakly and does not keep it alive. If the
// view has been garbage collected by the time the token runs, the token
// completes immediately as if it had no animations.
type Token struct {
	core    *tokenCore
	cleanup runtime.Cleanup
}

// tokenCore is the state shared with the cleanup. It must not reference the
// Token itself or the cleanup would never run.
type tokenCore struct {
	view       weak.Pointer[View]
	viewID     uint32
	viewName   string
	animations []Animation
	mode       Mode
	owner      *Animator
	consumed   bool
}

func newToken(owner *Animator, v *View, mode Mode, anims []Animation) *Token {
	core := &tokenCore{
		view:       weak.Make(v),
		animations: append([]Animation(nil), anims...),
		mode:       mode,
		owner:      owner,
	}
	if v != nil {
		core.viewID = v.ID
		core.viewName = v.Name
	}
	t := &Token{core: core}
	t.cleanup = runtime.AddCleanup(t, func(c *tokenCore) { c.owner.adopt(c) }, core)
	return t
}

// Mode returns the token's composition mode.
func (t *Token) Mode() Mode {
	return t.core.mode
}

// Len returns the number of animations in the token.
func (t *Token) Len() int {
	return len(t.core.animations)
}

// Consumed reports whether the token has already been executed.
func (t *Token) Consumed() bool {
	return t.core.consumed
}

// Execute runs the token's animations and calls onComplete once all of them
// have finished. A nil onComplete is allowed.
//
// Execute on a token that was already executed does nothing and returns
// false: onComplete is NOT called. Callers that wait on onComplete must make
// sure each token is executed only once.
func (t *Token) Execute(onComplete func()) bool {
	if t.core.consumed {
		t.core.owner.debugf("token on %q already consumed; skipping", t.core.viewName)
		return false
	}
	t.cleanup.Stop()
	t.core.run(onComplete)
	return true
}

// Release runs the token with no completion handler if it has not run yet.
func (t *Token) Release() {
	t.Execute(nil)
}

// run marks the core consumed and dispatches to the mode's strategy.
func (c *tokenCore) run(onComplete func()) {
	c.consumed = true

	finish := func() {
		c.owner.debugf("token on %q finished (%s, %d animations)", c.viewName, c.mode, len(c.animations))
		c.owner.emit(CompletionEvent{
			ViewID:   c.viewID,
			ViewName: c.viewName,
			Mode:     c.mode,
			Count:    len(c.animations),
		})
		if onComplete != nil {
			onComplete()
		}
	}

	v := c.view.Value()
	if v == nil {
		finish()
		return
	}

	c.owner.debugf("token on %q started (%s, %d animations)", c.viewName, c.mode, len(c.animations))
	exec := c.owner.exec
	switch c.mode {
	case Parallel:
		performInParallel(exec, v, c.animations, finish)
	default:
		performInSequence(exec, v, c.animations, finish)
	}
}

// performInSequence submits animations one at a time, each after the previous
// one's completion, then calls onDone. An empty list calls onDone immediately.
func performInSequence(exec Executor, v *View, anims []Animation, onDone func()) {
	s := newStepper(len(anims), func(i int, next func()) {
		exec.Submit(v, anims[i], next)
	}, onDone)
	s.advance()
}

// completionCounter fans in the completions of one parallel batch.
type completionCounter struct {
	expected  int
	completed int
	onAllDone func()
}

func (c *completionCounter) done() {
	c.completed++
	if c.completed == c.expected {
		c.onAllDone()
	}
}

// performInParallel submits every animation before waiting on any of them and
// calls onDone once, after the last completion arrives. An empty list calls
// onDone immediately.
func performInParallel(exec Executor, v *View, anims []Animation, onDone func()) {
	if len(anims) == 0 {
		onDone()
		return
	}
	c := &completionCounter{expected: len(anims), onAllDone: onDone}
	for _, a := range anims {
		exec.Submit(v, a, c.done)
	}
}

// stepper runs n work items strictly one after another. start begins item i
// and must arrange for next to be called once when it finishes; next may be
// called before start returns. Synchronous completions are looped rather than
// recursed, so long chains do not grow the stack.
type stepper struct {
	n      int
	start  func(i int, next func())
	onDone func()
	resume func()

	next     int
	running  bool
	resumed  bool
	finished bool
}

func newStepper(n int, start func(i int, next func()), onDone func()) *stepper {
	s := &stepper{n: n, start: start, onDone: onDone}
	s.resume = s.advance
	return s
}

func (s *stepper) advance() {
	if s.finished {
		return
	}
	if s.running {
		s.resumed = true
		return
	}
	s.running = true
	for {
		if s.next == s.n {
			s.running = false
			s.finished = true
			if s.onDone != nil {
				s.onDone()
			}
			return
		}
		i := s.next
		s.next++
		s.resumed = false
		s.start(i, s.resume)
		if !s.resumed {
			break
		}
	}
	s.running = false
}
