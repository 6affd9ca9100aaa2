// Package raster decodes image files into the 8-bit grayscale rasters the
// mesh generator consumes. PNG, JPEG and GIF decode through the standard
// library; TIFF, BMP and WebP through golang.org/x/image. Elevation data in
// GeoTIFF files is read through GDAL, see FromGeoTIFF.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes an encoded image and converts it to 8-bit grayscale.
func Decode(data []byte) (*image.Gray, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return ToGray(img), nil
}

// Load reads and decodes the image file at path.
func Load(path string) (*image.Gray, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Dimensions reports the pixel dimensions of an encoded image without
// decoding the pixel data.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// ToGray converts img to 8-bit grayscale, returning it unchanged if it
// already is. The result always has its origin at (0, 0).
func ToGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok && gray.Bounds().Min == image.Pt(0, 0) {
		return gray
	}
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}
