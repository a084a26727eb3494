package animate

// updateWorld recomputes a view's world center and world alpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this view even if it's not dirty.
func updateWorld(v *View, parentX, parentY, parentAlpha float64, parentRecomputed bool) {
	recompute := v.dirty || parentRecomputed
	if recompute {
		v.worldX = parentX + v.CenterX
		v.worldY = parentY + v.CenterY
		v.worldAlpha = parentAlpha * v.Alpha
		v.dirty = false
	}

	for _, child := range v.children {
		updateWorld(child, v.worldX, v.worldY, v.worldAlpha, recompute)
	}
}

// --- Property setters ---

// SetCenter sets the view's local center and marks it dirty.
func (v *View) SetCenter(x, y float64) {
	v.CenterX = x
	v.CenterY = y
	v.dirty = true
}

// SetSize sets the view's width and height.
func (v *View) SetSize(s Size) {
	v.Width = s.Width
	v.Height = s.Height
}

// SetAlpha sets the view's alpha and marks it dirty.
func (v *View) SetAlpha(a float64) {
	v.Alpha = a
	v.dirty = true
}

// MarkDirty forces recomputation of the view's world state on the next
// frame. Useful after bulk-setting fields directly.
func (v *View) MarkDirty() {
	v.dirty = true
}

// --- Coordinate conversion ---

// WorldCenter returns the view's center in world space as of the last update.
func (v *View) WorldCenter() (x, y float64) {
	return v.worldX, v.worldY
}

// WorldAlpha returns the product of this view's alpha and its ancestors'.
func (v *View) WorldAlpha() float64 {
	return v.worldAlpha
}

// WorldFrame returns the view's bounding box in world space.
func (v *View) WorldFrame() Rect {
	return Rect{
		X:      v.worldX - v.Width/2,
		Y:      v.worldY - v.Height/2,
		Width:  v.Width,
		Height: v.Height,
	}
}

// WorldToLocal converts a world-space point to this view's local space,
// where the origin is the view's center.
func (v *View) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return wx - v.worldX, wy - v.worldY
}

// LocalToWorld converts a local-space point to world space.
func (v *View) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return lx + v.worldX, ly + v.worldY
}
