package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// RoundedMask returns a size×size alpha mask that is opaque inside a rounded
// rectangle of the given corner radius and transparent outside it.
func RoundedMask(size, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z := vector.NewRasterizer(size, size)
	roundedRectPath(z, mask.Bounds(), radius)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// applyMask scales every pixel of img by the mask's alpha.
func applyMask(img *image.RGBA, mask *image.Alpha) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.DrawMask(out, out.Bounds(), img, img.Bounds().Min, mask, mask.Bounds().Min, draw.Src)
	return out
}
