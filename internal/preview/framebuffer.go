// Package preview shows rendered icons on a Linux framebuffer console.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Framebuffer blits icons onto a framebuffer device such as /dev/fb0.
// The console is held in graphics mode from the first Show until Close.
type Framebuffer struct {
	Path       string
	Background color.Color
	// Hold is how long each icon stays on screen.
	Hold   time.Duration
	Logger Logger

	console bool
}

func NewFramebuffer(path string, bg color.Color) *Framebuffer {
	return &Framebuffer{Path: path, Background: bg}
}

// Show clears the screen and draws img centred, scaled to half the screen height.
func (f *Framebuffer) Show(img image.Image) error {
	dev, err := fb.Open(f.Path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", f.Path, err)
	}
	defer dev.Close()

	if !f.console {
		f.console = true
		if err := setConsoleMode(true); err != nil {
			f.errorf("tty", "KD_GRAPHICS failed: %v", err)
		}
		if err := setCursorVisible(false); err != nil {
			f.errorf("tty", "hide cursor failed: %v", err)
		}
	}

	target := blit(dev, img, f.Background)
	bounds := dev.Bounds()
	f.infof("fb", "preview %dx%d into %v on %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), target, bounds.Dx(), bounds.Dy())
	if f.Hold > 0 {
		time.Sleep(f.Hold)
	}
	return nil
}

// Close gives the console back to text mode.
func (f *Framebuffer) Close() error {
	if !f.console {
		return nil
	}
	f.console = false
	if err := setCursorVisible(true); err != nil {
		f.errorf("tty", "show cursor failed: %v", err)
	}
	return setConsoleMode(false)
}

func (f *Framebuffer) infof(component, format string, args ...interface{}) {
	if f.Logger != nil {
		f.Logger.Infof(component, format, args...)
	}
}

func (f *Framebuffer) errorf(component, format string, args ...interface{}) {
	if f.Logger != nil {
		f.Logger.Errorf(component, format, args...)
	}
}

// blit fills dst with bg and nearest-neighbour scales src into a centred
// square. It returns the square it drew into.
func blit(dst draw.Image, src image.Image, bg color.Color) image.Rectangle {
	if bg == nil {
		bg = color.Black
	}
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)

	side := min(bounds.Dx(), bounds.Dy()) / 2
	if side <= 0 || src.Bounds().Empty() {
		return image.Rectangle{}
	}
	minX := bounds.Min.X + (bounds.Dx()-side)/2
	minY := bounds.Min.Y + (bounds.Dy()-side)/2
	target := image.Rect(minX, minY, minX+side, minY+side)
	xdraw.NearestNeighbor.Scale(dst, target, src, src.Bounds(), xdraw.Over, nil)
	return target
}
