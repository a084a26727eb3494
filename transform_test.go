package animate

import "testing"

func TestUpdateWorldNested(t *testing.T) {
	root := NewView("root")
	parent := NewView("parent")
	child := NewView("child")
	root.AddChild(parent)
	parent.AddChild(child)

	parent.SetCenter(100, 50)
	parent.SetAlpha(0.5)
	child.SetCenter(10, -5)
	child.SetAlpha(0.5)

	updateWorld(root, 0, 0, 1, false)

	if x, y := child.WorldCenter(); x != 110 || y != 45 {
		t.Errorf("child world center = (%v, %v), want (110, 45)", x, y)
	}
	if a := child.WorldAlpha(); a != 0.25 {
		t.Errorf("child world alpha = %v, want 0.25", a)
	}
}

func TestUpdateWorldParentChangePropagates(t *testing.T) {
	parent := NewView("parent")
	child := NewView("child")
	parent.AddChild(child)
	child.SetCenter(1, 1)
	updateWorld(parent, 0, 0, 1, false)

	parent.SetCenter(10, 10)
	updateWorld(parent, 0, 0, 1, false)

	if x, y := child.WorldCenter(); x != 11 || y != 11 {
		t.Errorf("child world center = (%v, %v), want (11, 11)", x, y)
	}
	if child.dirty || parent.dirty {
		t.Error("dirty flags should be cleared after update")
	}
}

func TestUpdateWorldSkipsClean(t *testing.T) {
	v := NewView("v")
	updateWorld(v, 0, 0, 1, false)

	// Direct field writes without MarkDirty are not picked up.
	v.CenterX = 99
	updateWorld(v, 0, 0, 1, false)
	if x, _ := v.WorldCenter(); x != 0 {
		t.Errorf("world x = %v, want 0 before MarkDirty", x)
	}

	v.MarkDirty()
	updateWorld(v, 0, 0, 1, false)
	if x, _ := v.WorldCenter(); x != 99 {
		t.Errorf("world x = %v, want 99 after MarkDirty", x)
	}
}

func TestWorldLocalRoundTrip(t *testing.T) {
	v := NewView("v")
	v.SetCenter(30, 40)
	v.SetSize(Size{Width: 10, Height: 10})
	updateWorld(v, 5, 5, 1, false)

	lx, ly := v.WorldToLocal(40, 50)
	if lx != 5 || ly != 5 {
		t.Errorf("WorldToLocal = (%v, %v), want (5, 5)", lx, ly)
	}
	wx, wy := v.LocalToWorld(lx, ly)
	if wx != 40 || wy != 50 {
		t.Errorf("LocalToWorld = (%v, %v), want (40, 50)", wx, wy)
	}
	want := Rect{X: 30, Y: 40, Width: 10, Height: 10}
	if got := v.WorldFrame(); got != want {
		t.Errorf("WorldFrame = %+v, want %+v", got, want)
	}
}
