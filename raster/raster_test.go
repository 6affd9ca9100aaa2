package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode_GrayPNG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	copy(src.Pix, []uint8{0, 64, 128, 192, 255, 32})

	gray, err := Decode(encodePNG(t, src))
	require.NoError(t, err)

	bounds := gray.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())
	assert.Equal(t, src.Pix, gray.Pix)
}

func TestDecode_InvalidData(t *testing.T) {
	_, err := Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestDimensions(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 7, 4))
	w, h, err := Dimensions(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, 7, w)
	assert.Equal(t, 4, h)
}

func TestToGray_ColorConversion(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	src.Set(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})

	gray := ToGray(src)
	assert.Equal(t, uint8(255), gray.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), gray.GrayAt(1, 0).Y)
}

// Subimages may have a non-zero origin; conversion must rebase to (0, 0).
func TestToGray_RebasesOrigin(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	sub := src.SubImage(image.Rect(1, 1, 3, 3))

	gray := ToGray(sub)
	assert.Equal(t, image.Pt(0, 0), gray.Bounds().Min)
	assert.Equal(t, 2, gray.Bounds().Dx())
	assert.Equal(t, src.GrayAt(1, 1).Y, gray.GrayAt(0, 0).Y)
	assert.Equal(t, src.GrayAt(2, 2).Y, gray.GrayAt(1, 1).Y)
}
