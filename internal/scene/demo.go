package scene

// Demo returns the built-in demonstration scene. It uses every operation
// kind, including nested views and padding.
func Demo() *Scene {
	return &Scene{
		Width:  48,
		Height: 24,
		Palette: []string{
			"#101820", "#f2f2f2", "#e04040", "#40a0e0", "#f0c040", "#60c060", "#3070b0",
		},
		Ops: []Op{
			{Kind: "border", Thickness: 1, Value: 1},
			{Kind: "ellipse", X: 3, Y: 3, W: 16, H: 12, Value: 2},
			{Kind: "line", X: 2, Y: 21, X2: 45, Y2: 2, Value: 4},
			{Kind: "hline", X: 2, Y: 18, Length: 20, Value: 1},
			{Kind: "view", X: 24, Y: 4, W: 20, H: 16, Ops: []Op{
				{Kind: "fill", Value: 3},
				{Kind: "checker", W: 4, H: 4, Value: 6},
				{Kind: "rect", W: 20, H: 16, Value: 1},
				{Kind: "pad", Thickness: 3, Ops: []Op{
					{Kind: "fill_rect", W: 7, H: 5, Value: 5},
					{Kind: "ellipse", X: 6, Y: 4, W: 8, H: 6, Value: 4},
					{Kind: "point", X: 13, Y: 9, Value: 2},
				}},
			}},
			{Kind: "vline", X: 21, Y: 2, Length: 20, Value: 1},
		},
	}
}
