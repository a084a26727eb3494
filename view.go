package animate

// --- ID counter ---

// viewIDCounter is a plain counter (no atomic; views are owned by the loop goroutine).
var viewIDCounter uint32

func nextViewID() uint32 {
	viewIDCounter++
	return viewIDCounter
}

// --- View ---

// View is the animation target. Animations mutate its exported fields; the
// tween executor interpolates between the values before and after a mutation.
// Position is expressed as a center point relative to the parent's center.
type View struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *View
	children []*View

	// Geometry (local)
	CenterX, CenterY float64
	Width, Height    float64

	// Appearance
	Alpha   float64
	Color   Color
	Visible bool

	// Metadata
	UserData any

	// Computed, refreshed by updateWorld when dirty.
	worldX, worldY float64
	worldAlpha     float64
	dirty          bool

	disposed bool
}

// NewView creates a visible, fully opaque, white view with zero size.
func NewView(name string) *View {
	return &View{
		ID:      nextViewID(),
		Name:    name,
		Alpha:   1,
		Color:   ColorWhite,
		Visible: true,
		dirty:   true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this view's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this view (cycle).
func (v *View) AddChild(child *View) {
	if child == nil {
		panic("animate: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(v, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, v) {
		panic("animate: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = v
	v.children = append(v.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this view.
// Panics if child.Parent != v.
func (v *View) RemoveChild(child *View) {
	if child.Parent != v {
		panic("animate: child's parent is not this view")
	}
	v.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this view from its parent.
// No-op if this view has no parent.
func (v *View) RemoveFromParent() {
	if v.Parent == nil {
		return
	}
	v.Parent.RemoveChild(v)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (v *View) Children() []*View {
	return v.children
}

// NumChildren returns the number of children.
func (v *View) NumChildren() int {
	return len(v.children)
}

// Find returns the first view named name in this subtree, searching
// depth-first and including v itself. Returns nil if there is none.
func (v *View) Find(name string) *View {
	if v.Name == name {
		return v
	}
	for _, child := range v.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Frame returns the view's local bounding box.
func (v *View) Frame() Rect {
	return Rect{
		X:      v.CenterX - v.Width/2,
		Y:      v.CenterY - v.Height/2,
		Width:  v.Width,
		Height: v.Height,
	}
}

// --- Disposal ---

// Dispose removes this view from its parent, marks it as disposed,
// and recursively disposes all descendants. In-flight transitions on a
// disposed view finish immediately.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.RemoveFromParent()
	v.dispose()
}

func (v *View) dispose() {
	v.disposed = true
	v.ID = 0
	for _, child := range v.children {
		child.Parent = nil
		child.dispose()
	}
	v.children = nil
	v.Parent = nil
	v.UserData = nil
}

// IsDisposed returns true if this view has been disposed.
func (v *View) IsDisposed() bool {
	return v.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of view.
func isAncestor(candidate, view *View) bool {
	for p := view; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from v.children without clearing child.Parent.
func (v *View) removeChildByPtr(child *View) {
	for i, c := range v.children {
		if c == child {
			copy(v.children[i:], v.children[i+1:])
			v.children[len(v.children)-1] = nil
			v.children = v.children[:len(v.children)-1]
			return
		}
	}
}

// markSubtreeDirty flags view and all its descendants for world recomputation.
func markSubtreeDirty(view *View) {
	view.dirty = true
	for _, child := range view.children {
		markSubtreeDirty(child)
	}
}
