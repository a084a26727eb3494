package animate

import "testing"

// --- Constructor defaults ---

func TestNewViewDefaults(t *testing.T) {
	v := NewView("test")
	if v.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if v.Name != "test" {
		t.Errorf("Name = %q, want %q", v.Name, "test")
	}
	if v.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", v.Alpha)
	}
	if v.Color != ColorWhite {
		t.Errorf("Color = %v, want white", v.Color)
	}
	if !v.Visible {
		t.Error("Visible should be true")
	}
	if !v.dirty {
		t.Error("dirty should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewView("a")
	b := NewView("b")
	if a.ID == b.ID {
		t.Errorf("IDs should be unique, both are %d", a.ID)
	}
}

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewView("parent")
	child := NewView("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Error("child not in parent's children")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewView("a")
	b := NewView("b")
	child := NewView("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be the new parent")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewView("p").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewView("a")
	b := NewView("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	b.AddChild(a)
}

func TestRemoveChild(t *testing.T) {
	parent := NewView("parent")
	c1 := NewView("c1")
	c2 := NewView("c2")
	parent.AddChild(c1)
	parent.AddChild(c2)

	parent.RemoveChild(c1)
	if c1.Parent != nil {
		t.Error("removed child still has a parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != c2 {
		t.Error("wrong children after removal")
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewView("a").RemoveChild(NewView("b"))
}

func TestRemoveFromParentNoParent(t *testing.T) {
	NewView("orphan").RemoveFromParent() // must not panic
}

func TestFind(t *testing.T) {
	root := NewView("root")
	a := NewView("a")
	b := NewView("b")
	deep := NewView("deep")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(deep)

	if root.Find("root") != root {
		t.Error("Find should match the receiver")
	}
	if root.Find("deep") != deep {
		t.Error("Find should search descendants")
	}
	if root.Find("b") != b {
		t.Error("Find should search siblings after a subtree")
	}
	if root.Find("missing") != nil {
		t.Error("Find should return nil for unknown names")
	}
}

func TestFrame(t *testing.T) {
	v := NewView("v")
	v.SetCenter(50, 40)
	v.SetSize(Size{Width: 20, Height: 10})
	want := Rect{X: 40, Y: 35, Width: 20, Height: 10}
	if got := v.Frame(); got != want {
		t.Errorf("Frame = %+v, want %+v", got, want)
	}
	if !want.Contains(40, 35) || want.Contains(61, 40) {
		t.Error("Rect.Contains edge handling is wrong")
	}
}

// --- Disposal ---

func TestDisposeRecursive(t *testing.T) {
	root := NewView("root")
	parent := NewView("parent")
	child := NewView("child")
	root.AddChild(parent)
	parent.AddChild(child)

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("Dispose should mark the subtree disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed view should be removed from its parent")
	}
	if parent.ID != 0 {
		t.Error("disposed view ID should be cleared")
	}
	parent.Dispose() // second call is a no-op
}

func TestDebugAddChildDisposedPanics(t *testing.T) {
	globalDebug = true
	defer func() { globalDebug = false }()

	v := NewView("v")
	v.Dispose()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic in debug mode")
		}
	}()
	NewView("p").AddChild(v)
}
