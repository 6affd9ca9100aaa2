package raster

import (
	"fmt"
	"image"
	"math"

	"github.com/airbusgeo/godal"
)

// FromGeoTIFF loads a GeoTIFF file from path using gdal and reads a rectangle
// of pixels with upper left corner at (x, y), width w and height h from the
// first band, rescaled from the band's value range to 8-bit intensities. A
// zero w or h selects everything right of x or below y. This lets elevation
// rasters drive a lithophane directly.
func FromGeoTIFF(path string, x, y, w, h uint) (*image.Gray, error) {
	godal.RegisterAll()
	hDataset, err := godal.Open(path)
	if err != nil {
		return nil, err
	}
	defer hDataset.Close()

	structure := hDataset.Structure()

	if uint(structure.SizeX) < x+w {
		return nil, fmt.Errorf("selected window goes outside image bounds (image width=%d, window max x=%d)", structure.SizeX, x+w)
	}
	if uint(structure.SizeY) < y+h {
		return nil, fmt.Errorf("selected window goes outside image bounds (image height=%d, window max y=%d)", structure.SizeY, y+h)
	}

	if w == 0 {
		w = uint(structure.SizeX) - x
	}
	if h == 0 {
		h = uint(structure.SizeY) - y
	}

	gray := image.NewGray(image.Rect(0, 0, int(w), int(h)))
	if w == 0 || h == 0 {
		return gray, nil
	}

	band := hDataset.Bands()[0]
	buf := make([]float32, w*h)
	if err := band.Read(int(x), int(y), buf, int(w), int(h)); err != nil {
		return nil, err
	}

	// Set undefined to zero, for now
	for i := range buf {
		if buf[i] == -math.MaxFloat32 {
			buf[i] = 0
		}
	}

	min, max := buf[0], buf[0]
	for _, v := range buf {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}

	for i, v := range buf {
		gray.Pix[i] = uint8(255 * (v - min) / span)
	}
	return gray, nil
}
