package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// roundedRectPath appends a closed rounded rectangle to z.
// radius is clamped to half of the shorter side.
func roundedRectPath(z *vector.Rasterizer, rect image.Rectangle, radius int) {
	radius = min(radius, rect.Dx()/2, rect.Dy()/2)
	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
	if radius <= 0 {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
		return
	}
	r := float32(radius)
	k := r * kappa
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()
}

// fillRoundedRect composites c over dst inside the rounded rectangle.
// Pixels outside dst's bounds are never touched.
func fillRoundedRect(dst *image.RGBA, rect image.Rectangle, radius int, c color.Color) {
	b := dst.Bounds()
	if rect.Intersect(b).Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	roundedRectPath(z, rect.Sub(b.Min), radius)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// outlineRoundedRect fills rect with fill and strokes its inner edge with
// outline at the given width.
func outlineRoundedRect(dst *image.RGBA, rect image.Rectangle, radius, width int, fill, outline color.Color) {
	fillRoundedRect(dst, rect, radius, outline)
	inner := rect.Inset(width)
	fillRoundedRect(dst, inner, max(0, radius-width), fill)
}

// strokeRect draws a square-cornered frame of the given width inside rect.
func strokeRect(dst *image.RGBA, rect image.Rectangle, width int, c color.Color) {
	if width <= 0 || rect.Empty() {
		return
	}
	src := image.NewUniform(c)
	w := min(width, rect.Dx(), rect.Dy())
	bars := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+w),
		image.Rect(rect.Min.X, rect.Max.Y-w, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+w, rect.Max.Y),
		image.Rect(rect.Max.X-w, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, bar := range bars {
		draw.Draw(dst, bar.Intersect(dst.Bounds()), src, image.Point{}, draw.Over)
	}
}
