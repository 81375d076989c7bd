package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// drawTextBottomRight draws text so its ink box ends at (right, bottom).
func drawTextBottomRight(img *image.RGBA, text string, right, bottom int, fg color.Color, face font.Face) {
	bounds, _ := font.BoundString(face, text)
	dot := fixed.Point26_6{
		X: fixed.I(right) - bounds.Max.X,
		Y: fixed.I(bottom) - bounds.Max.Y,
	}
	drawTextAt(img, text, dot, fg, face)
}

// drawTextCentered draws text with its ink box centred on (cx, cy).
func drawTextCentered(img *image.RGBA, text string, cx, cy int, fg color.Color, face font.Face) {
	bounds, _ := font.BoundString(face, text)
	dot := fixed.Point26_6{
		X: fixed.I(cx) - (bounds.Min.X+bounds.Max.X)/2,
		Y: fixed.I(cy) - (bounds.Min.Y+bounds.Max.Y)/2,
	}
	drawTextAt(img, text, dot, fg, face)
}

func drawTextAt(img *image.RGBA, text string, dot fixed.Point26_6, fg color.Color, face font.Face) {
	// Whole-pixel origins keep hinted glyphs crisp at icon sizes.
	dot = fixed.P(dot.X.Round(), dot.Y.Round())
	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face, Dot: dot}
	drawer.DrawString(text)
}
