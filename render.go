package animate

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawCommand is one filled rectangle in world space. Color is not
// premultiplied; Alpha is the view's world alpha times Color.A.
type drawCommand struct {
	Frame Rect
	Color Color
	Alpha float64
}

// collectCommands appends a command for every visible view with a non-empty
// size under v, in tree order. Invisible or fully transparent views hide their
// whole subtree.
func collectCommands(v *View, dst []drawCommand) []drawCommand {
	if !v.Visible || v.worldAlpha <= 0 {
		return dst
	}
	if v.Width > 0 && v.Height > 0 {
		dst = append(dst, drawCommand{
			Frame: v.WorldFrame(),
			Color: v.Color,
			Alpha: v.worldAlpha * v.Color.A,
		})
	}
	for _, child := range v.children {
		dst = collectCommands(child, dst)
	}
	return dst
}

// whitePixel is scaled and tinted to draw every rectangle. Created on first use
// so that importing the package does not touch the graphics driver.
var whitePixel *ebiten.Image

func submitCommands(target *ebiten.Image, commands []drawCommand) {
	if len(commands) == 0 {
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	var op ebiten.DrawImageOptions
	for i := range commands {
		cmd := &commands[i]
		op.GeoM.Reset()
		op.GeoM.Scale(cmd.Frame.Width, cmd.Frame.Height)
		op.GeoM.Translate(cmd.Frame.X, cmd.Frame.Y)
		op.ColorScale.Reset()
		a := float32(cmd.Alpha)
		op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
		target.DrawImage(whitePixel, &op)
	}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
