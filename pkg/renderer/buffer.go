package renderer

import (
	"image"
	"image/color"
)

// PixelBuffer holds a finished frame as 8-bit RGB triples, row-major with the
// top row first. It implements image.Image so it can be handed to any encoder.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelBuffer allocates a black buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// PixOffset returns the index of the first byte of pixel (x, y), y counted from the top
func (b *PixelBuffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * 3
}

// RGB returns the channels of pixel (x, y)
func (b *PixelBuffer) RGB(x, y int) (r, g, bl uint8) {
	i := b.PixOffset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// SetRGB stores the channels of pixel (x, y)
func (b *PixelBuffer) SetRGB(x, y int, r, g, bl uint8) {
	i := b.PixOffset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *PixelBuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(b.Bounds()) {
		return color.RGBA{}
	}
	r, g, bl := b.RGB(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}
