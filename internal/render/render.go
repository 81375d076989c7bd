// Package render draws the application icons.
//
// Every function here is pure with respect to its size argument: the same size
// always yields the same pixels. Fonts are the only external input and come from
// an injected fonts.Resolver.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/handbok/pwaicons/internal/fonts"
	"github.com/handbok/pwaicons/internal/render/layout"
)

// ErrInvalidSize is returned for sizes outside 1..MaxSize.
var ErrInvalidSize = errors.New("invalid icon size")

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Renderer composes icons. The zero value renders with the built-in fallback font.
type Renderer struct {
	Fonts     fonts.Resolver
	Preferred []string
	Logger    Logger
}

func New(resolver fonts.Resolver, preferred []string) *Renderer {
	return &Renderer{Fonts: resolver, Preferred: preferred}
}

func checkSize(size int) error {
	if size <= 0 || size > MaxSize {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, size, MaxSize)
	}
	return nil
}

func (r *Renderer) font() *fonts.Handle {
	if r == nil || r.Fonts == nil {
		return fonts.Default()
	}
	return r.Fonts.Resolve(r.Preferred)
}

func (r *Renderer) infof(format string, args ...interface{}) {
	if r != nil && r.Logger != nil {
		r.Logger.Infof("render", format, args...)
	}
}

// Render draws the book icon at size×size with transparent rounded corners.
func (r *Renderer) Render(size int) (*image.RGBA, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	FillGradient(canvas, GradientTop, GradientBottom)

	book := layout.NewBook(size)
	fillRoundedRect(canvas, book.Shadow, book.Radius, Shadow)
	outlineRoundedRect(canvas, book.Body, book.Radius, book.OutlineWidth, Page, PageOutline)
	fillRoundedRect(canvas, book.Spine, book.Radius, Spine)
	fillRoundedRect(canvas, book.Title, book.TitleRadius, TitleBar)
	for _, line := range book.Lines {
		fillRoundedRect(canvas, line, book.LineRadius, TextLine)
	}

	handle := r.font()
	drawTextBottomRight(canvas, Glyph, book.GlyphRight, book.GlyphBottom, GlyphColor, handle.Face(float64(book.GlyphPx)))

	out := applyMask(canvas, RoundedMask(size, size/4))
	r.infof("book %dx%d, %d text lines, font %s", size, size, len(book.Lines), handle.Name())
	return out, nil
}

// RenderFlat draws the flat style: a blue square, a centred white glyph and a
// darker inset frame. The result is opaque.
func (r *Renderer) RenderFlat(size int) (*image.RGBA, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	handle := r.font()
	px := float64(int(float64(size) * flatGlyphScale))
	drawTextCentered(canvas, Glyph, size/2, size/2, color.White, handle.Face(px))

	border := max(1, size/32)
	strokeRect(canvas, layout.Inset(canvas.Bounds(), border), border, FlatBorder)
	r.infof("flat %dx%d, font %s", size, size, handle.Name())
	return canvas, nil
}

// Flatten composites img over an opaque bg. The result has no transparent
// pixels, so image/png encodes it as plain RGB.
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, &image.Uniform{C: opaque(bg)}, image.Point{}, draw.Src)
	draw.Draw(out, b, img, b.Min, draw.Over)
	return out
}

func opaque(c color.Color) color.Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	n.A = 0xFFFF
	return n
}
