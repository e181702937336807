// Command griddemo renders a grid scene to an image file.
//
// Without -scene it renders a built-in demonstration scene:
//
//	griddemo -output demo.png -scale 10
//	griddemo -scene panel.toml -output panel.tiff -text
//	griddemo -write-scene demo.toml
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/grid"
	"github.com/gogpu/grid/alloc"
	"github.com/gogpu/grid/gridimage"
	"github.com/gogpu/grid/gridtext"
	"github.com/gogpu/grid/internal/scene"
)

type options struct {
	scene      string
	output     string
	format     string
	scale      int
	filter     string
	text       bool
	verbose    bool
	writeScene string
}

func main() {
	var opts options
	flag.StringVar(&opts.scene, "scene", "", "scene file (TOML); built-in demo if empty")
	flag.StringVar(&opts.output, "output", "griddemo.png", "output image file")
	flag.StringVar(&opts.format, "format", "", "output format: png, bmp or tiff (default from -output)")
	flag.IntVar(&opts.scale, "scale", 8, "pixels per grid cell")
	flag.StringVar(&opts.filter, "filter", "nearest", "scaling filter: nearest, approx, bilinear, catmullrom (only nearest keeps palette indices exact)")
	flag.BoolVar(&opts.text, "text", false, "also print the grid as text")
	flag.BoolVar(&opts.verbose, "v", false, "verbose logging")
	flag.StringVar(&opts.writeScene, "write-scene", "", "write the scene as TOML to this file and exit")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	grid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		log.Fatalf("griddemo: %v", err)
	}
}

func run(opts options) error {
	s := scene.Demo()
	if opts.scene != "" {
		var err error
		if s, err = scene.Load(opts.scene); err != nil {
			return err
		}
	}

	if opts.writeScene != "" {
		return writeScene(opts.writeScene, s)
	}

	format, err := gridimage.ParseFormat(opts.output)
	if opts.format != "" {
		format, err = gridimage.ParseFormat(opts.format)
	}
	if err != nil {
		return err
	}
	filter, err := gridimage.ParseFilter(opts.filter)
	if err != nil {
		return err
	}
	palette, err := s.ColorPalette()
	if err != nil {
		return err
	}

	pool := alloc.NewPool[uint8](2)
	g, err := s.Render(pool)
	if err != nil {
		return err
	}
	defer grid.Release(g, pool)

	if opts.text {
		fmt.Print(gridtext.Format(g, cellRune, gridtext.Options{}))
	}

	img := gridimage.ScaleBy(g, opts.scale, filter)
	if err := gridimage.SaveAs(opts.output, gridimage.PalettedView(img, palette), format); err != nil {
		return err
	}

	grid.Logger().Info("saved", "output", opts.output, "format", format,
		"cells", g.Size(), "pixels", img.Size())
	return nil
}

// cellRune maps element values to printable digits and letters.
func cellRune(v uint8) rune {
	const digits = ".123456789abcdefghijklmnopqrstuvwxyz"
	if int(v) < len(digits) {
		return rune(digits[v])
	}
	return '#'
}

func writeScene(path string, s *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene file: %w", err)
	}
	if err := s.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	grid.Logger().Info("scene written", "path", path)
	return f.Close()
}
