package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path"
	"strings"

	"github.com/hschendel/stl"

	"github.com/lithophane-generator/lithophane-generator/expr"
	"github.com/lithophane-generator/lithophane-generator/lithophane"
	"github.com/lithophane-generator/lithophane-generator/raster"
)

func realMain() error {
	white := flag.Float64("white", 0.5, "extrusion depth for pure white pixels")
	black := flag.Float64("black", 3.0, "extrusion depth for pure black pixels")
	preview := flag.Bool("preview", false, "generate only the backing surface, no extrusion or walls")
	step := flag.Uint("step", 1, "sample every Nth pixel in preview mode")
	x := flag.Uint("x", 0, "GeoTIFF window x coordinate (default 0)")
	y := flag.Uint("y", 0, "GeoTIFF window y coordinate (default 0)")
	w := flag.Uint("w", 0, "GeoTIFF window width (default max)")
	h := flag.Uint("h", 0, "GeoTIFF window height (default max)")
	output := flag.String("output", "out.stl", "output STL file (default out.stl)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s [OPTIONS] <input image> <x expr> <y expr> <z expr>:\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "The expressions map image indices to world coordinates over x, y, w and h, eg \"x\" \"y\" \"0\".\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if path.Ext(*output) != ".stl" {
		return fmt.Errorf("unsupported output format")
	}
	if *step == 0 {
		return fmt.Errorf("step must be at least 1")
	}

	switch {
	case flag.NArg() < 4:
		flag.Usage()
		return fmt.Errorf("expected an input image and three coordinate expressions")
	case flag.NArg() == 4:
		// Great
	default:
		flag.Usage()
		return fmt.Errorf("unrecognised arguments %s", strings.Join(flag.Args()[4:], ", "))
	}
	input := flag.Arg(0)

	xFn, err := expr.Parse("x", flag.Arg(1))
	if err != nil {
		return err
	}
	yFn, err := expr.Parse("y", flag.Arg(2))
	if err != nil {
		return err
	}
	zFn, err := expr.Parse("z", flag.Arg(3))
	if err != nil {
		return err
	}

	var img *image.Gray
	switch strings.ToLower(path.Ext(input)) {
	case ".tif", ".tiff":
		fmt.Printf("Reading GeoTIFF '%s'...", input)
		img, err = raster.FromGeoTIFF(input, *x, *y, *w, *h)
	default:
		fmt.Printf("Reading image '%s'...", input)
		img, err = raster.Load(input)
	}
	if err != nil {
		return err
	}
	bounds := img.Bounds()
	fmt.Printf("done (%dx%d)\n", bounds.Dx(), bounds.Dy())

	var solid *stl.Solid
	if *preview {
		fmt.Printf("Generating preview mesh with step %d...", *step)
		solid, err = lithophane.Preview(xFn, yFn, zFn, bounds.Dx(), bounds.Dy(), int(*step))
	} else {
		fmt.Printf("Generating lithophane mesh...")
		solid, err = lithophane.Generate(xFn, yFn, zFn, img, float32(*white), float32(*black))
	}
	if err != nil {
		return err
	}
	fmt.Println("done")

	fmt.Printf("Writing %d triangles to '%s'...", len(solid.Triangles), *output)
	if err := solid.WriteFile(*output); err != nil {
		return err
	}
	fmt.Println("done")

	return nil
}

func main() {
	err := realMain()
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}
