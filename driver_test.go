package animate

import "testing"

func TestRunEmpty(t *testing.T) {
	Run()
	Run([]*Token{}...)

	calls := 0
	RunThen(func() { calls++ })
	if calls != 1 {
		t.Errorf("RunThen with no tokens called onDone %d times, want 1", calls)
	}
}

func TestRunWaitsForParallelBatch(t *testing.T) {
	rec := &recordingExecutor{}
	a := NewAnimator(rec)
	first := NewView("first")
	second := NewView("second")

	t1 := a.AnimateInParallel(first, FadeIn(1), Move(10, 0, 1))
	t2 := a.Animate(second, FadeOut(1))
	Run(t1, t2)

	if len(rec.subs) != 2 {
		t.Fatalf("%d submissions after Run, want 2", len(rec.subs))
	}
	rec.complete(t, 1)
	if len(rec.subs) != 2 {
		t.Fatal("second token started before the first batch finished")
	}
	rec.complete(t, 0)
	if len(rec.subs) != 3 {
		t.Fatalf("%d submissions, want 3 once the first batch finished", len(rec.subs))
	}
	if rec.subs[2].view != second {
		t.Error("third submission should target the second token's view")
	}
}

func TestRunListForm(t *testing.T) {
	rec := &recordingExecutor{}
	a := NewAnimator(rec)
	v := NewView("v")

	tokens := []*Token{
		a.Animate(v, FadeIn(1)),
		a.Animate(v, FadeOut(2)),
		a.Animate(v, FadeIn(3)),
	}
	done := 0
	RunThen(func() { done++ }, tokens...)

	for i := range tokens {
		if len(rec.subs) != i+1 {
			t.Fatalf("step %d: %d submissions, want %d", i, len(rec.subs), i+1)
		}
		if got := rec.subs[i].anim.Duration(); got != float32(i+1) {
			t.Fatalf("step %d: duration %v, want %d", i, got, i+1)
		}
		if done != 0 {
			t.Fatal("onDone fired early")
		}
		rec.complete(t, i)
	}
	if done != 1 {
		t.Errorf("onDone called %d times, want 1", done)
	}
}

func TestRunEmptyTokensInChain(t *testing.T) {
	rec := &recordingExecutor{}
	a := NewAnimator(rec)
	v := NewView("v")

	tokens := make([]*Token, 0, 1002)
	for range 1000 {
		tokens = append(tokens, a.Animate(v))
	}
	tokens = append(tokens, a.AnimateInParallel(v), a.Animate(v, FadeIn(1)))

	done := 0
	RunThen(func() { done++ }, tokens...)
	if len(rec.subs) != 1 {
		t.Fatalf("%d submissions, want 1", len(rec.subs))
	}
	rec.complete(t, 0)
	if done != 1 {
		t.Errorf("onDone called %d times, want 1", done)
	}
}

func TestRunStallsOnConsumedToken(t *testing.T) {
	rec := &recordingExecutor{}
	a := NewAnimator(rec)
	v := NewView("v")

	used := a.Animate(v, FadeIn(1))
	used.Execute(nil)
	rec.complete(t, 0)

	next := a.Animate(v, FadeOut(1))
	done := 0
	RunThen(func() { done++ }, used, next)

	if len(rec.subs) != 1 {
		t.Errorf("%d submissions, want 1 (chain must stop at the consumed token)", len(rec.subs))
	}
	if next.Consumed() {
		t.Error("token after the consumed one should not run")
	}
	if done != 0 {
		t.Error("onDone should not fire for a stalled chain")
	}
}

func TestRunWithInstantExecutor(t *testing.T) {
	a := NewAnimator(InstantExecutor{})
	v := NewView("v")
	v.Alpha = 0

	Run(
		a.AnimateInParallel(v, FadeIn(1), Move(10, 20, 1)),
		a.Animate(v, Resize(Size{Width: 30, Height: 40}, 1), Move(-5, 0, 1)),
	)

	if v.Alpha != 1 || v.CenterX != 5 || v.CenterY != 20 || v.Width != 30 || v.Height != 40 {
		t.Errorf("view = %+v", v)
	}
}
