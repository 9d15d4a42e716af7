// internal/output/png.go
package output

import (
	"image"
	"image/png"
	"io"

	"dnadotplot/core/dotplot"
)

// Gray intensities of the raster rendering.
const (
	GrayNoMatch           uint8 = 255
	GrayForward           uint8 = 0
	GrayReverseComplement uint8 = 128
)

// Gray maps a cell to its 8-bit intensity.
func Gray(c dotplot.Cell) uint8 {
	switch c {
	case dotplot.ForwardMatch:
		return GrayForward
	case dotplot.ReverseComplementMatch:
		return GrayReverseComplement
	}
	return GrayNoMatch
}

// Image renders the matrix one pixel per cell.
func Image(m *dotplot.Matrix) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Size, m.Size))
	for y := 0; y < m.Size; y++ {
		row := m.Row(y)
		off := y * img.Stride
		for x, c := range row {
			img.Pix[off+x] = Gray(c)
		}
	}
	return img
}

// WritePNG encodes the matrix as an 8-bit grayscale PNG.
func WritePNG(w io.Writer, m *dotplot.Matrix) error {
	return png.Encode(w, Image(m))
}
