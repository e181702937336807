// Package gridimage connects grids to the image ecosystem.
//
// Views wrap grid memory in image types without copying, so anything that
// draws into or reads from an image.Image works directly on a grid:
//
//	g := grid.New[uint8](grid.Sz(64, 64))
//	g.FillEllipse(grid.Pt(8, 8), grid.Sz(48, 48), 255)
//	err := gridimage.Save("disc.png", gridimage.GrayView(g))
//
// Scaling goes through golang.org/x/image/draw interpolators, and encoding
// supports PNG, BMP and TIFF.
package gridimage
