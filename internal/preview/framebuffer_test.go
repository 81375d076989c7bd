package preview

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"
)

func TestBlitCentersAndScales(t *testing.T) {
	screen := image.NewRGBA(image.Rect(0, 0, 100, 60))
	icon := image.NewRGBA(image.Rect(0, 0, 16, 16))
	red := color.RGBA{R: 0xFF, A: 0xFF}
	draw.Draw(icon, icon.Bounds(), &image.Uniform{C: red}, image.Point{}, draw.Src)
	bg := color.RGBA{B: 0xFF, A: 0xFF}

	target := blit(screen, icon, bg)
	if want := image.Rect(35, 15, 65, 45); target != want {
		t.Fatalf("target = %v, want %v", target, want)
	}
	if got := screen.RGBAAt(0, 0); got != bg {
		t.Errorf("corner = %v, want background %v", got, bg)
	}
	if got := screen.RGBAAt(50, 30); got != red {
		t.Errorf("centre = %v, want %v", got, red)
	}
}

func TestBlitKeepsBackgroundUnderTransparency(t *testing.T) {
	screen := image.NewRGBA(image.Rect(0, 0, 40, 40))
	icon := image.NewRGBA(image.Rect(0, 0, 8, 8))
	blit(screen, icon, color.White)
	if got := screen.RGBAAt(20, 20); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("transparent icon pixel = %v, want white background", got)
	}
}

func TestShowMissingDevice(t *testing.T) {
	f := NewFramebuffer(filepath.Join(t.TempDir(), "fb9"), color.Black)
	if err := f.Show(image.NewRGBA(image.Rect(0, 0, 4, 4))); err == nil {
		t.Error("Show on a missing device should fail")
	}
}

func TestCloseWithoutShow(t *testing.T) {
	if err := NewFramebuffer("/dev/null", color.Black).Close(); err != nil {
		t.Errorf("Close before Show = %v, want nil", err)
	}
}
