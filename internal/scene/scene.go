// Package scene decodes TOML scene descriptions and renders them into
// byte grids.
//
// A scene names a canvas and a list of drawing operations:
//
//	width = 32
//	height = 16
//	background = 0
//	palette = ["#000000", "#ffffff", "#e04040"]
//
//	[[op]]
//	kind = "border"
//	thickness = 1
//	value = 1
//
//	[[op]]
//	kind = "view"
//	x = 2
//	y = 2
//	w = 12
//	h = 8
//
//	  [[op.op]]
//	  kind = "ellipse"
//	  w = 12
//	  h = 8
//	  value = 2
//
// Operations inside a view or pad run against the child grid, with
// coordinates relative to it.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/grid"
)

// Errors returned while loading or rendering a scene.
var (
	// ErrUnknownKey is returned when the document contains keys that do not
	// map to any scene field.
	ErrUnknownKey = errors.New("scene: unknown key")

	// ErrUnknownOp is returned for an operation kind that is not supported.
	ErrUnknownOp = errors.New("scene: unknown operation")

	// ErrInvalidScene is returned for a canvas that cannot be allocated.
	ErrInvalidScene = errors.New("scene: invalid scene")

	// ErrInvalidColor is returned for a palette entry that is not #rrggbb.
	ErrInvalidColor = errors.New("scene: invalid color")
)

// Scene is a canvas description and the operations drawn onto it.
type Scene struct {
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Stride     int      `toml:"stride,omitzero"` // 0 means Width
	Background uint8    `toml:"background"`
	Palette    []string `toml:"palette,omitempty"`
	Ops        []Op     `toml:"op"`
}

// Op is a single drawing operation. Which fields are used depends on Kind:
//
//	fill       value
//	point      x y value
//	hline      x y length value
//	vline      x y length value
//	line       x y x2 y2 value
//	rect       x y w h value
//	fill_rect  x y w h value
//	ellipse    x y w h value
//	checker    w h value (tile size; alternate tiles get value)
//	border     thickness | left top right bottom, value
//	view       x y w h, op
//	pad        thickness | left top right bottom, op
type Op struct {
	Kind      string `toml:"kind"`
	X         int    `toml:"x,omitzero"`
	Y         int    `toml:"y,omitzero"`
	X2        int    `toml:"x2,omitzero"`
	Y2        int    `toml:"y2,omitzero"`
	W         int    `toml:"w,omitzero"`
	H         int    `toml:"h,omitzero"`
	Length    int    `toml:"length,omitzero"`
	Thickness int    `toml:"thickness,omitzero"`
	Left      int    `toml:"left,omitzero"`
	Top       int    `toml:"top,omitzero"`
	Right     int    `toml:"right,omitzero"`
	Bottom    int    `toml:"bottom,omitzero"`
	Value     uint8  `toml:"value,omitzero"`
	Ops       []Op   `toml:"op,omitempty"`
}

// Load reads a scene from a TOML file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scene: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scene from TOML. Keys that do not belong to the scene
// format are rejected with ErrUnknownKey, and operations are checked so
// that Render cannot fail on the scene's content.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode writes s as TOML.
func (s *Scene) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return nil
}

// Size returns the canvas size.
func (s *Scene) Size() grid.Size {
	return grid.Sz(s.Width, s.Height)
}

// Validate checks the canvas dimensions, the palette and every operation.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if s.Stride != 0 && s.Stride < s.Width {
		return fmt.Errorf("%w: stride %d < width %d", ErrInvalidScene, s.Stride, s.Width)
	}
	if _, err := s.ColorPalette(); err != nil {
		return err
	}
	_, err := compile(s.Ops, "op")
	return err
}

// Render allocates the canvas from a, fills it with the background value
// and runs every operation. The caller releases the grid with a.
func (s *Scene) Render(a grid.Allocator[uint8]) (grid.Grid[uint8], error) {
	if err := s.Validate(); err != nil {
		return grid.Empty[uint8](), err
	}
	painters, err := compile(s.Ops, "op")
	if err != nil {
		return grid.Empty[uint8](), err
	}

	stride := s.Stride
	if stride == 0 {
		stride = s.Width
	}
	g, err := grid.AllocateWithStride(a, s.Size(), stride)
	if err != nil {
		return g, fmt.Errorf("scene: %w", err)
	}
	grid.Logger().Debug("scene: rendering", "size", s.Size(), "stride", stride, "ops", len(s.Ops))
	return g.Fill(s.Background).Apply(painters...), nil
}

// ColorPalette returns the scene palette as 256 colors: the listed entries
// first, then a gray ramp for the remaining indices, so every element value
// maps to a color.
func (s *Scene) ColorPalette() (color.Palette, error) {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	if len(s.Palette) > len(p) {
		return nil, fmt.Errorf("%w: %d palette entries, at most 256", ErrInvalidColor, len(s.Palette))
	}
	for i, hex := range s.Palette {
		c, err := parseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		p[i] = c
	}
	return p, nil
}

func parseHex(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
