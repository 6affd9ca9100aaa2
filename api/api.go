// Package api is the embeddable surface of the generator: coordinate
// expressions and encoded image bytes in, binary STL bytes out. It exists so
// hosts that are not the command line (servers, bindings) can drive
// generation without touching files.
package api

import (
	"bytes"

	"github.com/hschendel/stl"

	"github.com/lithophane-generator/lithophane-generator/expr"
	"github.com/lithophane-generator/lithophane-generator/lithophane"
	"github.com/lithophane-generator/lithophane-generator/raster"
)

// Generate builds a full lithophane from an encoded image and returns it as
// binary STL. The three expressions define the backing surface over the
// variables x, y, w and h.
func Generate(xExpr, yExpr, zExpr string, imageData []byte, whiteDepth, blackDepth float32) ([]byte, error) {
	xFn, yFn, zFn, err := parseAll(xExpr, yExpr, zExpr)
	if err != nil {
		return nil, err
	}

	img, err := raster.Decode(imageData)
	if err != nil {
		return nil, err
	}

	solid, err := lithophane.Generate(xFn, yFn, zFn, img, whiteDepth, blackDepth)
	if err != nil {
		return nil, err
	}

	return toBinary(solid)
}

// Preview builds the backing-only preview mesh for a width x height image
// sampled every step indices and returns it as binary STL.
func Preview(xExpr, yExpr, zExpr string, width, height, step int) ([]byte, error) {
	xFn, yFn, zFn, err := parseAll(xExpr, yExpr, zExpr)
	if err != nil {
		return nil, err
	}

	solid, err := lithophane.Preview(xFn, yFn, zFn, width, height, step)
	if err != nil {
		return nil, err
	}

	return toBinary(solid)
}

// ImageDimensions reports the pixel dimensions of an encoded image.
func ImageDimensions(imageData []byte) (width, height int, err error) {
	return raster.Dimensions(imageData)
}

func parseAll(xExpr, yExpr, zExpr string) (xFn, yFn, zFn lithophane.CoordFunc, err error) {
	if xFn, err = expr.Parse("x", xExpr); err != nil {
		return nil, nil, nil, err
	}
	if yFn, err = expr.Parse("y", yExpr); err != nil {
		return nil, nil, nil, err
	}
	if zFn, err = expr.Parse("z", zExpr); err != nil {
		return nil, nil, nil, err
	}
	return xFn, yFn, zFn, nil
}

func toBinary(solid *stl.Solid) ([]byte, error) {
	var buf bytes.Buffer
	if err := solid.WriteAll(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
