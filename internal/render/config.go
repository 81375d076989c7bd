package render

import "image/color"

// Palette of the book artwork.
var (
	GradientTop    = color.RGBA{R: 0x25, G: 0x63, B: 0xEB, A: 0xFF} // #2563eb
	GradientBottom = color.RGBA{R: 0x1D, G: 0x4E, B: 0xD8, A: 0xFF} // #1d4ed8

	Shadow      = color.NRGBA{R: 0, G: 0, B: 0, A: 30}
	Page        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // #ffffff
	PageOutline = color.RGBA{R: 0xE2, G: 0xE8, B: 0xF0, A: 0xFF} // #e2e8f0
	Spine       = color.RGBA{R: 0xCB, G: 0xD5, B: 0xE1, A: 0xFF} // #cbd5e1
	TitleBar    = color.RGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF} // #64748b
	TextLine    = color.RGBA{R: 0x94, G: 0xA3, B: 0xB8, A: 0xFF} // #94a3b8
	GlyphColor  = GradientTop

	// FlatBorder outlines the flat style icon.
	FlatBorder = color.RGBA{R: 0x1E, G: 0x40, B: 0xAF, A: 0xFF} // #1e40af
)

// Background is what opaque icons are flattened onto.
var Background = GradientTop

// Glyph is the letter drawn on every icon.
const Glyph = "H"

const (
	// MaxSize bounds the canvas so a typo cannot allocate gigabytes.
	MaxSize = 8192

	// MinTransparentSize is the smallest icon whose size/4 corner radius
	// fully clears the corner pixel. Smaller icons must be flattened.
	MinTransparentSize = 16

	flatGlyphScale = 0.6
)
