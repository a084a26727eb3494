package animate

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxFields is the number of animatable float64 fields on a View:
// center (2), size (2), alpha (1) and color (4).
const maxFields = 9

// viewState is a snapshot of every animatable field of a View.
type viewState [maxFields]float64

func snapshot(v *View) viewState {
	return viewState{
		v.CenterX, v.CenterY,
		v.Width, v.Height,
		v.Alpha,
		v.Color.R, v.Color.G, v.Color.B, v.Color.A,
	}
}

func (s *viewState) restore(v *View) {
	v.CenterX, v.CenterY = s[0], s[1]
	v.Width, v.Height = s[2], s[3]
	v.Alpha = s[4]
	v.Color = Color{s[5], s[6], s[7], s[8]}
}

// fieldPointers returns the addresses of v's animatable fields in snapshot order.
func fieldPointers(v *View) [maxFields]*float64 {
	return [maxFields]*float64{
		&v.CenterX, &v.CenterY,
		&v.Width, &v.Height,
		&v.Alpha,
		&v.Color.R, &v.Color.G, &v.Color.B, &v.Color.A,
	}
}

// pendingModel is the state a view settles in once every transition in
// flight on it has finished. Later submits compute their end state from it
// rather than from the interpolated values on screen, so relative animations
// running in parallel add up.
type pendingModel struct {
	state   viewState
	touched [maxFields]bool
	refs    int
}

// settle writes the exact model values of every touched field.
func (m *pendingModel) settle(v *View) {
	ptrs := fieldPointers(v)
	for i := range maxFields {
		if m.touched[i] {
			*ptrs[i] = m.state[i]
		}
	}
	v.MarkDirty()
}

// transition animates the fields one Animation changed. It is the executor's
// unit of work: one per Submit. Each step adds its share of the per-field
// delta, so transitions on the same field stack.
type transition struct {
	progress *gween.Tween
	last     float64
	fields   [maxFields]*float64
	deltas   [maxFields]float64
	count    int
	target   *View
	model    *pendingModel
	done     func()
	finished bool
}

func newTransition(v *View, m *pendingModel, a Animation, fn ease.TweenFunc, done func()) *transition {
	tr := &transition{target: v, done: done}
	if v == nil || v.IsDisposed() {
		tr.finished = true
		return tr
	}

	// Fields no transition owns follow whatever the view holds now.
	shown := snapshot(v)
	for i := range maxFields {
		if !m.touched[i] {
			m.state[i] = shown[i]
		}
	}

	// Run the mutation against the model to learn the end state, then put
	// the on-screen values back.
	m.state.restore(v)
	a.Apply(v)
	end := snapshot(v)
	shown.restore(v)

	ptrs := fieldPointers(v)
	for i := range maxFields {
		delta := end[i] - m.state[i]
		if delta == 0 {
			continue
		}
		tr.fields[tr.count] = ptrs[i]
		tr.deltas[tr.count] = delta
		tr.count++
		m.touched[i] = true
	}
	m.state = end
	m.refs++
	tr.model = m

	// A transition that changes nothing still takes its full duration.
	tr.progress = gween.New(0, 1, a.Duration(), fn)
	return tr
}

// step advances the transition by dt seconds and adds the eased change to the
// target fields. A disposed target finishes at once with no writes. Reports
// whether the transition is finished.
func (tr *transition) step(dt float32) bool {
	if tr.finished {
		return true
	}
	if tr.target.IsDisposed() {
		tr.finish()
		return true
	}

	p, finished := tr.progress.Update(dt)
	dp := float64(p) - tr.last
	tr.last = float64(p)
	for i := 0; i < tr.count; i++ {
		*tr.fields[i] += tr.deltas[i] * dp
	}
	if tr.count > 0 {
		tr.target.MarkDirty()
	}
	if finished {
		tr.finish()
	}
	return finished
}

// finish releases the transition's hold on the view's model. The last one
// out writes exact model values, since summed float deltas drift.
func (tr *transition) finish() {
	tr.finished = true
	m := tr.model
	if m == nil {
		return
	}
	tr.model = nil
	m.refs--
	if m.refs == 0 && !tr.target.IsDisposed() {
		m.settle(tr.target)
	}
}

// TweenExecutor is the host animation engine: an Executor that interpolates
// every field an Animation changes using gween. Call Update once per frame;
// completions are delivered from Update, after the frame's writes, in the
// order the transitions were submitted.
//
// There is no global animation manager. Users call Update themselves, or let
// Scene do it.
type TweenExecutor struct {
	// Ease is the easing function used for new transitions.
	Ease ease.TweenFunc

	active   []*transition
	finished []*transition
	models   map[*View]*pendingModel
	updating bool
}

// NewTweenExecutor creates an executor using fn for easing. A nil fn selects
// ease.InOutQuad.
func NewTweenExecutor(fn ease.TweenFunc) *TweenExecutor {
	if fn == nil {
		fn = ease.InOutQuad
	}
	return &TweenExecutor{Ease: fn, models: make(map[*View]*pendingModel)}
}

// Submit starts animating a on v. The view does not change until the next
// Update, and done is never called from within Submit. When other
// transitions are in flight on v, a starts from the state they will leave
// v in, as if they had already finished.
func (e *TweenExecutor) Submit(v *View, a Animation, done func()) {
	fn := e.Ease
	if fn == nil {
		fn = ease.InOutQuad
	}
	var m *pendingModel
	if v != nil && !v.IsDisposed() {
		if e.models == nil {
			e.models = make(map[*View]*pendingModel)
		}
		m = e.models[v]
		if m == nil {
			m = &pendingModel{}
			e.models[v] = m
		}
	}
	e.active = append(e.active, newTransition(v, m, a, fn, done))
}

// Update advances all in-flight transitions by dt seconds and then calls the
// done callback of each transition that finished. Transitions submitted from
// those callbacks start advancing on the next Update.
func (e *TweenExecutor) Update(dt float32) {
	if e.updating {
		panic("animate: TweenExecutor.Update called from a completion callback")
	}
	e.updating = true
	defer func() { e.updating = false }()

	n := 0
	for _, tr := range e.active {
		if tr.step(dt) {
			if m := e.models[tr.target]; m != nil && m.refs == 0 {
				delete(e.models, tr.target)
			}
			e.finished = append(e.finished, tr)
			continue
		}
		e.active[n] = tr
		n++
	}
	clear(e.active[n:])
	e.active = e.active[:n]

	for i, tr := range e.finished {
		e.finished[i] = nil
		tr.done()
	}
	e.finished = e.finished[:0]
}

// Active returns the number of transitions still in flight.
func (e *TweenExecutor) Active() int {
	return len(e.active)
}
