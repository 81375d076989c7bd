// Package ico writes Windows icon files whose entries are PNG streams.
package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// MaxSize is the largest edge an ICO directory entry can describe.
const MaxSize = 256

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

const (
	headerSize = 6
	entrySize  = 16
)

// Encode writes imgs as one ICO file. Each image must be square and at most
// MaxSize pixels wide.
func Encode(w io.Writer, imgs []image.Image) error {
	if len(imgs) == 0 {
		return errors.New("ico: no images")
	}
	payloads := make([][]byte, len(imgs))
	for i, img := range imgs {
		b := img.Bounds()
		if b.Dx() != b.Dy() || b.Dx() <= 0 || b.Dx() > MaxSize {
			return fmt.Errorf("ico: image %d is %dx%d, want square up to %d", i, b.Dx(), b.Dy(), MaxSize)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("ico: encode image %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
	}

	var out bytes.Buffer
	if err := binary.Write(&out, binary.LittleEndian, iconDir{Type: 1, Count: uint16(len(imgs))}); err != nil {
		return err
	}
	offset := uint32(headerSize + entrySize*len(imgs))
	for i, img := range imgs {
		edge := dimension(img.Bounds().Dx())
		entry := iconDirEntry{
			Width:       edge,
			Height:      edge,
			Planes:      1,
			BitCount:    32,
			BytesInRes:  uint32(len(payloads[i])),
			ImageOffset: offset,
		}
		if err := binary.Write(&out, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += entry.BytesInRes
	}
	for _, p := range payloads {
		out.Write(p)
	}
	_, err := w.Write(out.Bytes())
	return err
}

// dimension encodes an edge length; 0 stands for 256.
func dimension(px int) uint8 {
	if px >= MaxSize {
		return 0
	}
	return uint8(px)
}
