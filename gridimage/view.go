package gridimage

import (
	"fmt"
	"image"
	"image/color"
	"unsafe"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/grid"
)

// GrayView returns an *image.Gray sharing g's memory. Pixel (x, y) of the
// image is element (x, y) of the grid and the row stride is preserved, so
// views and padded grids are wrapped without copying.
func GrayView(g grid.Grid[uint8]) *image.Gray {
	return &image.Gray{
		Pix:    g.Elements(),
		Stride: g.Stride(),
		Rect:   image.Rect(0, 0, g.Width(), g.Height()),
	}
}

// PalettedView returns an *image.Paletted sharing g's memory, with every
// element used as an index into p.
func PalettedView(g grid.Grid[uint8], p color.Palette) *image.Paletted {
	return &image.Paletted{
		Pix:     g.Elements(),
		Stride:  g.Stride(),
		Rect:    image.Rect(0, 0, g.Width(), g.Height()),
		Palette: p,
	}
}

// RGBAView returns an *image.RGBA sharing g's memory. color.RGBA has the
// same four-byte layout as a pixel of image.RGBA, so the element slice is
// reinterpreted in place.
func RGBAView(g grid.Grid[color.RGBA]) *image.RGBA {
	elems := g.Elements()
	img := &image.RGBA{
		Stride: g.StrideBytes(),
		Rect:   image.Rect(0, 0, g.Width(), g.Height()),
	}
	if len(elems) > 0 {
		img.Pix = unsafe.Slice((*uint8)(unsafe.Pointer(&elems[0])), len(elems)*4)
	}
	return img
}

// FromGray returns a grid over img's pixels. The grid borrows img.Pix when
// the pixel rows are laid out as a whole padded buffer; otherwise, as for a
// SubImage touching the last row, the pixels are copied into a new grid.
func FromGray(img *image.Gray) (grid.Grid[uint8], error) {
	size := grid.Sz(img.Rect.Dx(), img.Rect.Dy())
	if size.IsZero() {
		return grid.Empty[uint8](), nil
	}
	off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)
	if n := img.Stride * size.Y; off+n <= len(img.Pix) {
		g, err := grid.FromElementsWithStride(img.Pix[off:off+n:off+n], size, img.Stride)
		if err != nil {
			return grid.Empty[uint8](), fmt.Errorf("gridimage: %w", err)
		}
		return g, nil
	}

	g := grid.New[uint8](size)
	for y := range size.Y {
		start := off + y*img.Stride
		copy(g.Row(y), img.Pix[start:start+size.X])
	}
	return g, nil
}

// FromImage converts img into an owning compact RGBA grid allocated from a.
// The image's bounds are translated so that its Min corner becomes (0, 0).
func FromImage(img image.Image, a grid.Allocator[color.RGBA]) (grid.Grid[color.RGBA], error) {
	b := img.Bounds()
	g, err := grid.Allocate(a, grid.Sz(b.Dx(), b.Dy()))
	if err != nil {
		return g, fmt.Errorf("gridimage: %w", err)
	}
	if g.IsEmpty() {
		return g, nil
	}
	dst := RGBAView(g)
	xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
	return g, nil
}

// ToGray converts img to luminance into an owning compact grid allocated
// from a.
func ToGray(img image.Image, a grid.Allocator[uint8]) (grid.Grid[uint8], error) {
	b := img.Bounds()
	g, err := grid.Allocate(a, grid.Sz(b.Dx(), b.Dy()))
	if err != nil {
		return g, fmt.Errorf("gridimage: %w", err)
	}
	if g.IsEmpty() {
		return g, nil
	}
	dst := GrayView(g)
	xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
	return g, nil
}
