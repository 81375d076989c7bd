// Package fonts resolves the font used for the icon glyph.
//
// A Resolver turns a list of preferred font files into a Handle. Resolution never
// fails: when nothing usable is found the caller gets the built-in fallback face.
package fonts

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// SystemFonts are the bold sans-serif faces probed on common hosts.
var SystemFonts = []string{
	"/System/Library/Fonts/Arial Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/liberation-sans/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"C:/Windows/Fonts/arialbd.ttf",
}

// FallbackName is reported by the built-in fallback handle.
const FallbackName = "basicfont 7x13"

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Resolver picks a font from an ordered list of preferred font files.
type Resolver interface {
	Resolve(preferred []string) *Handle
}

// Handle is a resolved font that can produce faces at any pixel size.
type Handle struct {
	name string
	otf  *opentype.Font
	ttf  *truetype.Font
}

// Default returns the designated fallback handle.
func Default() *Handle { return &Handle{name: FallbackName} }

// Bundled returns a handle over the embedded Go Bold font.
func Bundled() *Handle {
	h, err := parse("gobold", gobold.TTF)
	if err != nil {
		return Default()
	}
	return h
}

// Name identifies the font source (a file path, "gobold" or FallbackName).
func (h *Handle) Name() string {
	if h == nil {
		return FallbackName
	}
	return h.name
}

// Fallback reports whether h is the built-in bitmap font.
func (h *Handle) Fallback() bool {
	return h == nil || (h.otf == nil && h.ttf == nil)
}

// Face returns a face whose em square is px pixels tall.
// The bitmap fallback ignores px.
func (h *Handle) Face(px float64) font.Face {
	if h == nil {
		return basicfont.Face7x13
	}
	if h.otf != nil {
		face, err := opentype.NewFace(h.otf, &opentype.FaceOptions{Size: px, DPI: 72, Hinting: font.HintingFull})
		if err == nil {
			return face
		}
	}
	if h.ttf != nil {
		return truetype.NewFace(h.ttf, &truetype.Options{Size: px, DPI: 72, Hinting: font.HintingFull})
	}
	return basicfont.Face7x13
}

// parse tries the opentype parser first and the freetype parser second.
func parse(name string, data []byte) (*Handle, error) {
	if len(data) == 0 {
		return nil, errors.New("empty font data")
	}
	otf, oerr := opentype.Parse(data)
	if oerr == nil {
		return &Handle{name: name, otf: otf}, nil
	}
	ttf, terr := truetype.Parse(data)
	if terr == nil {
		return &Handle{name: name, ttf: ttf}, nil
	}
	return nil, fmt.Errorf("opentype: %v; truetype: %w", oerr, terr)
}

// FileResolver loads the first preferred file that exists and parses.
type FileResolver struct {
	Logger Logger
}

func (r FileResolver) Resolve(preferred []string) *Handle {
	for _, path := range preferred {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				r.errorf("read %s failed: %v", path, err)
			}
			continue
		}
		h, err := parse(path, data)
		if err != nil {
			r.errorf("parse %s failed: %v", path, err)
			continue
		}
		r.infof("loaded %s", path)
		return h
	}
	r.errorf("no preferred font found, using %s", FallbackName)
	return Default()
}

func (r FileResolver) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof("fonts", format, args...)
	}
}

func (r FileResolver) errorf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Errorf("fonts", format, args...)
	}
}

// Static always resolves to the same handle.
type Static struct{ Handle *Handle }

func (s Static) Resolve([]string) *Handle {
	if s.Handle == nil {
		return Default()
	}
	return s.Handle
}
