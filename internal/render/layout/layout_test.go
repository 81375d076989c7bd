package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	tests := []struct {
		rect    image.Rectangle
		padding int
		want    image.Rectangle
	}{
		{image.Rect(0, 0, 10, 10), 2, image.Rect(2, 2, 8, 8)},
		{image.Rect(0, 0, 10, 10), 0, image.Rect(0, 0, 10, 10)},
		{image.Rect(0, 0, 10, 10), -3, image.Rect(0, 0, 10, 10)},
		{image.Rect(0, 0, 4, 4), 3, image.Rectangle{Min: image.Pt(2, 2), Max: image.Pt(2, 2)}},
		{image.Rect(0, 0, 10, 4), 3, image.Rectangle{Min: image.Pt(5, 2), Max: image.Pt(5, 2)}},
		{image.Rect(0, 0, 1, 1), 1, image.Rectangle{Min: image.Pt(0, 0), Max: image.Pt(0, 0)}},
	}
	for _, tt := range tests {
		if got := Inset(tt.rect, tt.padding); got != tt.want {
			t.Errorf("Inset(%v, %d) = %v, want %v", tt.rect, tt.padding, got, tt.want)
		}
	}
}

func TestSplitVerticalClamps(t *testing.T) {
	rect := image.Rect(10, 0, 20, 5)
	left, right := SplitVertical(rect, 30)
	if left != rect || !right.Empty() {
		t.Errorf("SplitVertical over-wide = %v, %v", left, right)
	}
	left, right = SplitVertical(rect, -1)
	if !left.Empty() || right != rect {
		t.Errorf("SplitVertical negative = %v, %v", left, right)
	}
}

func TestNewBook192(t *testing.T) {
	b := NewBook(192)
	if want := image.Rect(48, 36, 144, 156); b.Body != want {
		t.Fatalf("Body = %v, want %v", b.Body, want)
	}
	if want := image.Rect(51, 39, 147, 159); b.Shadow != want {
		t.Errorf("Shadow = %v, want %v", b.Shadow, want)
	}
	if b.Spine.Dx() != 9 || b.Spine.Min != b.Body.Min {
		t.Errorf("Spine = %v", b.Spine)
	}
	if want := image.Rect(63, 48, 123, 54); b.Title != want {
		t.Errorf("Title = %v, want %v", b.Title, want)
	}
	if len(b.Lines) != len(TextLineWidths) {
		t.Fatalf("got %d text lines, want %d", len(b.Lines), len(TextLineWidths))
	}
	if b.Lines[0].Min.Y != 61 || b.Lines[0].Dy() != 2 {
		t.Errorf("first line = %v", b.Lines[0])
	}
	if b.Radius != 6 || b.OutlineWidth != 1 || b.GlyphPx != 16 {
		t.Errorf("radius %d outline %d glyph %d", b.Radius, b.OutlineWidth, b.GlyphPx)
	}
}

func TestNewBookTruncatesLines(t *testing.T) {
	for _, size := range []int{8, 16, 20} {
		b := NewBook(size)
		if len(b.Lines) >= len(TextLineWidths) {
			t.Errorf("size %d: got %d lines, want truncation", size, len(b.Lines))
		}
		for _, l := range b.Lines {
			if l.Max.Y > b.Body.Max.Y {
				t.Errorf("size %d: line %v passes book bottom %d", size, l, b.Body.Max.Y)
			}
		}
	}
}

func TestNewBookStaysOnCanvas(t *testing.T) {
	for size := 1; size <= 600; size++ {
		b := NewBook(size)
		canvas := image.Rect(0, 0, size, size)
		for _, r := range append([]image.Rectangle{b.Body, b.Spine, b.Title}, b.Lines...) {
			if !r.Empty() && !r.In(canvas) {
				t.Fatalf("size %d: %v outside canvas", size, r)
			}
		}
	}
}
