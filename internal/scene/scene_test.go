package scene_test

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/alloc"
	"github.com/gogpu/grid/gridtext"
	"github.com/gogpu/grid/internal/scene"
)

// digits renders a byte grid with '.' for zero and the digit otherwise.
func digits(g grid.Grid[uint8]) string {
	return gridtext.Format(g, func(v uint8) rune {
		if v == 0 {
			return '.'
		}
		return rune('0' + v)
	}, gridtext.Options{})
}

func render(t *testing.T, doc string) grid.Grid[uint8] {
	t.Helper()
	s, err := scene.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	g, err := s.Render(alloc.Heap[uint8]{})
	require.NoError(t, err)
	return g
}

func TestRenderNestedView(t *testing.T) {
	g := render(t, `
width = 6
height = 5

[[op]]
kind = "border"
thickness = 1
value = 1

[[op]]
kind = "view"
x = 1
y = 1
w = 4
h = 3

  [[op.op]]
  kind = "hline"
  y = 1
  length = 4
  value = 2

  [[op.op]]
  kind = "point"
  x = 3
  y = 2
  value = 3
`)
	want := "111111\n" +
		"1....1\n" +
		"122221\n" +
		"1...31\n" +
		"111111\n"
	assert.Equal(t, want, digits(g))
}

func TestRenderOps(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "pad",
			doc: `width = 5
height = 4
[[op]]
kind = "pad"
left = 1
top = 2
  [[op.op]]
  kind = "fill"
  value = 4`,
			want: ".....\n.....\n.4444\n.4444\n",
		},
		{
			name: "border per side",
			doc: `width = 4
height = 3
[[op]]
kind = "border"
left = 2
bottom = 1
value = 1`,
			want: "11..\n11..\n1111\n",
		},
		{
			name: "line and vline",
			doc: `width = 4
height = 4
background = 5
[[op]]
kind = "line"
x2 = 3
y2 = 3
value = 1
[[op]]
kind = "vline"
x = 3
y = 3
length = -2
value = 2`,
			want: "1555\n5152\n5512\n5551\n",
		},
		{
			name: "checker",
			doc: `width = 5
height = 3
[[op]]
kind = "checker"
w = 2
h = 2
value = 7`,
			want: "77..7\n77..7\n..77.\n",
		},
		{
			name: "rects and ellipse",
			doc: `width = 7
height = 7
[[op]]
kind = "rect"
w = 7
h = 7
value = 1
[[op]]
kind = "ellipse"
x = 1
y = 1
w = 5
h = 5
value = 3
[[op]]
kind = "fill_rect"
x = 3
y = 3
w = 1
h = 1
value = 2`,
			want: "1111111\n" +
				"1.333.1\n" +
				"1333331\n" +
				"1332331\n" +
				"1333331\n" +
				"1.333.1\n" +
				"1111111\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, digits(render(t, tt.doc)))
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"unknown top-level key", "width = 2\nheight = 2\ncolour = 1", scene.ErrUnknownKey},
		{"unknown op key", "width = 2\nheight = 2\n[[op]]\nkind = \"fill\"\nvalu = 1", scene.ErrUnknownKey},
		{"unknown kind", "width = 2\nheight = 2\n[[op]]\nkind = \"circle\"", scene.ErrUnknownOp},
		{"unknown nested kind", "width = 2\nheight = 2\n[[op]]\nkind = \"view\"\n[[op.op]]\nkind = \"spiral\"", scene.ErrUnknownOp},
		{"zero width", "width = 0\nheight = 2", scene.ErrInvalidScene},
		{"narrow stride", "width = 4\nheight = 2\nstride = 3", scene.ErrInvalidScene},
		{"bad color", "width = 2\nheight = 2\npalette = [\"#12345\"]", scene.ErrInvalidColor},
		{"bad hex", "width = 2\nheight = 2\npalette = [\"#zzzzzz\"]", scene.ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scene.Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	docs := map[string]string{
		"value out of range": "width = 2\nheight = 2\n[[op]]\nkind = \"fill\"\nvalue = 300",
		"nested under fill":  "width = 2\nheight = 2\n[[op]]\nkind = \"fill\"\n[[op.op]]\nkind = \"fill\"",
		"syntax":             "width = ",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := scene.Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestViewOutsideTargetIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	grid.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { grid.SetLogger(nil) })

	g := render(t, `width = 3
height = 3
[[op]]
kind = "view"
x = 2
y = 2
w = 2
h = 2
  [[op.op]]
  kind = "fill"
  value = 1`)

	assert.Equal(t, "...\n...\n...\n", digits(g))
	assert.Contains(t, buf.String(), "view outside target")
	assert.Contains(t, buf.String(), "op[0]")
}

func TestRenderStride(t *testing.T) {
	s := &scene.Scene{Width: 3, Height: 2, Stride: 8, Background: 1}
	g, err := s.Render(alloc.Heap[uint8]{})
	require.NoError(t, err)
	assert.Equal(t, 8, g.Stride())
	assert.Equal(t, "111\n111\n", digits(g))
}

func TestRenderAllocationFailure(t *testing.T) {
	s := scene.Demo()
	_, err := s.Render(alloc.NewLimited[uint8](nil, 10))
	assert.ErrorIs(t, err, alloc.ErrOutOfMemory)
	assert.ErrorIs(t, err, grid.ErrAllocation)
}

func TestRenderValidates(t *testing.T) {
	s := &scene.Scene{Width: 2, Height: 2, Ops: []scene.Op{{Kind: "blur"}}}
	_, err := s.Render(alloc.Heap[uint8]{})
	assert.True(t, errors.Is(err, scene.ErrUnknownOp))
}

func TestColorPalette(t *testing.T) {
	s := &scene.Scene{Palette: []string{"#ff8000", "#000000"}}
	p, err := s.ColorPalette()
	require.NoError(t, err)
	require.Len(t, p, 256)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, A: 0xff}, p[0])
	assert.Equal(t, color.Gray{Y: 200}, p[200])
}

func TestDemoRoundTrip(t *testing.T) {
	demo := scene.Demo()
	require.NoError(t, demo.Validate())

	var buf bytes.Buffer
	require.NoError(t, demo.Encode(&buf))

	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	loaded, err := scene.Load(path)
	require.NoError(t, err)
	assert.Equal(t, demo, loaded)

	a, err := demo.Render(alloc.Heap[uint8]{})
	require.NoError(t, err)
	b, err := loaded.Render(alloc.Heap[uint8]{})
	require.NoError(t, err)
	assert.Equal(t, digits(a), digits(b))
}

func TestLoadMissing(t *testing.T) {
	_, err := scene.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
