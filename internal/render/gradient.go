package render

import (
	"image"
	"image/color"
)

// FillGradient paints a vertical linear gradient over dst.
// Row y gets top + (bottom-top)*y/height per channel, truncated, and every
// column of a row shares that colour.
func FillGradient(dst *image.RGBA, top, bottom color.RGBA) {
	b := dst.Bounds()
	height := b.Dy()
	for y := 0; y < height; y++ {
		ratio := float64(y) / float64(height)
		c := color.RGBA{
			R: lerp(top.R, bottom.R, ratio),
			G: lerp(top.G, bottom.G, ratio),
			B: lerp(top.B, bottom.B, ratio),
			A: 0xFF,
		}
		row := dst.Pix[dst.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < b.Dx(); x++ {
			i := 4 * x
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

func lerp(start, end uint8, t float64) uint8 {
	return uint8(float64(start) + (float64(end)-float64(start))*t)
}
