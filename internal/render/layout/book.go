package layout

import "image"

// TextLineWidths are the relative widths of the decorative lines under the title.
var TextLineWidths = []float64{0.6, 0.7, 0.5, 0.8, 0.65}

// TitleWidth is the title bar width relative to the usable line width.
const TitleWidth = 0.8

// Book is the integer geometry of the book artwork for one icon size.
// Every field is derived from Size with floor division.
type Book struct {
	Size int

	// Body is the book page, Shadow the same shape shifted down and right.
	Body   image.Rectangle
	Shadow image.Rectangle
	Spine  image.Rectangle

	Radius       int // body, shadow and spine corners
	OutlineWidth int

	Title       image.Rectangle
	TitleRadius int

	Lines      []image.Rectangle
	LineRadius int

	// GlyphRight and GlyphBottom bound the ink box of the letter glyph.
	GlyphRight  int
	GlyphBottom int
	GlyphPx     int
}

// NewBook computes the book geometry for a size×size canvas.
func NewBook(size int) Book {
	bw := size / 2
	bh := size * 5 / 8
	bx := (size - bw) / 2
	by := (size - bh) / 2

	b := Book{
		Size:         size,
		Body:         AnchorTopLeft(image.Pt(bx, by), bw, bh),
		Radius:       size / 32,
		OutlineWidth: max(1, size/128),
		TitleRadius:  size / 128,
		LineRadius:   size / 256,
		GlyphRight:   bx + bw - size/32,
		GlyphBottom:  by + bh - size/24,
		GlyphPx:      max(12, size/12),
	}
	b.Shadow = Offset(b.Body, max(1, size/64))

	spineWidth := max(2, bw/10)
	b.Spine, _ = SplitVertical(b.Body, spineWidth)

	lineX := bx + spineWidth + size/32
	lineWidth := bw - spineWidth - size/16

	titleY := by + size/16
	titleHeight := max(2, size/64)
	b.Title = AnchorTopLeft(image.Pt(lineX, titleY), int(float64(lineWidth)*TitleWidth), titleHeight*2)

	lineHeight := max(1, size/96)
	spacing := size / 48
	limit := by + bh - size/16
	y := titleY + titleHeight*3 + spacing
	for _, ratio := range TextLineWidths {
		if y+lineHeight > limit {
			break
		}
		b.Lines = append(b.Lines, AnchorTopLeft(image.Pt(lineX, y), int(float64(lineWidth)*ratio), lineHeight))
		y += lineHeight + spacing
	}
	return b
}
