package scene

import (
	"fmt"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/tile"
)

func compile(ops []Op, path string) ([]grid.Painter[uint8], error) {
	painters := make([]grid.Painter[uint8], 0, len(ops))
	for i, op := range ops {
		p, err := op.painter(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		painters = append(painters, p)
	}
	return painters, nil
}

func (op Op) pos() grid.Point  { return grid.Pt(op.X, op.Y) }
func (op Op) size() grid.Size  { return grid.Sz(op.W, op.H) }
func (op Op) end() grid.Point  { return grid.Pt(op.X2, op.Y2) }
func (op Op) near() grid.Size  { return grid.Sz(op.Left, op.Top) }
func (op Op) far() grid.Size   { return grid.Sz(op.Right, op.Bottom) }
func (op Op) uniform() bool    { return op.Thickness != 0 }
func (op Op) thick() grid.Size { return grid.Sz(op.Thickness, op.Thickness) }

// edges returns the per-side thickness of a border or pad operation.
func (op Op) edges() (upperLeft, bottomRight grid.Size) {
	if op.uniform() {
		return op.thick(), op.thick()
	}
	return op.near(), op.far()
}

func (op Op) painter(path string) (grid.Painter[uint8], error) {
	v := op.Value
	if len(op.Ops) > 0 && op.Kind != "view" && op.Kind != "pad" {
		return nil, fmt.Errorf("scene: %s: %q takes no nested operations", path, op.Kind)
	}

	switch op.Kind {
	case "fill":
		return grid.PainterFunc[uint8](func(g grid.Grid[uint8]) { g.Fill(v) }), nil
	case "point":
		return grid.PainterFunc[uint8](func(g grid.Grid[uint8]) { g.Draw(op.pos(), v) }), nil
	case "hline":
		return grid.PainterFunc[uint8](func(g grid.Grid[uint8]) { g.DrawHLine(op.pos(), op.Length, v) }), nil
	case "vline":
		return grid.PainterFunc[uint8](func(g grid.Grid[uint8]) { g.DrawVLine(op.pos(), op.Length, v) }), nil
	case "line":
		return grid.Line(op.pos(), op.end(), v), nil
	case "rect":
		return grid.Rect(op.pos(), op.size(), v, false), nil
	case "fill_rect":
		return grid.Rect(op.pos(), op.size(), v, true), nil
	case "ellipse":
		return grid.Ellipse(op.pos(), op.size(), v), nil
	case "checker":
		return grid.PainterFunc[uint8](func(g grid.Grid[uint8]) { tile.Checker(g, op.size(), v) }), nil
	case "border":
		ul, br := op.edges()
		return grid.PainterFunc[uint8](func(g grid.Grid[uint8]) { g.BorderEx(ul, br, v) }), nil
	case "view":
		children, err := compile(op.Ops, path+".op")
		if err != nil {
			return nil, err
		}
		return viewPainter(path, op.pos(), op.size(), children), nil
	case "pad":
		children, err := compile(op.Ops, path+".op")
		if err != nil {
			return nil, err
		}
		ul, br := op.edges()
		return grid.InPadding(ul, br, children...), nil
	}
	return nil, fmt.Errorf("%w: %s: %q", ErrUnknownOp, path, op.Kind)
}

// viewPainter is grid.InView that reports views falling outside their
// target instead of skipping them silently.
func viewPainter(path string, p grid.Point, size grid.Size, children []grid.Painter[uint8]) grid.Painter[uint8] {
	inner := grid.InView(p, size, children...)
	return grid.PainterFunc[uint8](func(g grid.Grid[uint8]) {
		if g.ViewOrEmpty(p, size).IsEmpty() {
			grid.Logger().Warn("scene: view outside target, skipped",
				"op", path, "pos", p, "size", size, "target", g.Size())
			return
		}
		inner.Paint(g)
	})
}
