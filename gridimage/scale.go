package gridimage

import (
	"fmt"
	"image/color"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/grid"
)

// Filters maps interpolator names to golang.org/x/image/draw kernels.
var Filters = map[string]xdraw.Interpolator{
	"nearest":    xdraw.NearestNeighbor,
	"approx":     xdraw.ApproxBiLinear,
	"bilinear":   xdraw.BiLinear,
	"catmullrom": xdraw.CatmullRom,
}

// ParseFilter looks up an interpolator by name, ignoring case.
func ParseFilter(name string) (xdraw.Interpolator, error) {
	if f, ok := Filters[strings.ToLower(name)]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("gridimage: unknown filter %q", name)
}

// Scale resamples src to fill dst with the given interpolator, writing
// straight into dst's memory. Either grid may be a view. An empty src or
// dst leaves dst unchanged.
//
// NearestNeighbor copies element values exactly, which makes it suitable
// for index grids such as masks and palette indices.
func Scale(dst, src grid.Grid[uint8], interp xdraw.Interpolator) {
	if dst.IsEmpty() || src.IsEmpty() {
		return
	}
	d, s := GrayView(dst), GrayView(src)
	interp.Scale(d, d.Rect, s, s.Rect, xdraw.Src, nil)
}

// ScaleRGBA is Scale for RGBA grids.
func ScaleRGBA(dst, src grid.Grid[color.RGBA], interp xdraw.Interpolator) {
	if dst.IsEmpty() || src.IsEmpty() {
		return
	}
	d, s := RGBAView(dst), RGBAView(src)
	interp.Scale(d, d.Rect, s, s.Rect, xdraw.Src, nil)
}

// ScaleBy returns a new heap grid factor times larger than src in both
// dimensions, resampled with interp. A factor below 1 is treated as 1.
func ScaleBy(src grid.Grid[uint8], factor int, interp xdraw.Interpolator) grid.Grid[uint8] {
	factor = max(factor, 1)
	dst := grid.New[uint8](src.Size().Mul(factor))
	Scale(dst, src, interp)
	return dst
}
