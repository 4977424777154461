package loaders

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePPM_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, image.NewRGBA(image.Rect(0, 0, 5, 3))))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, []string{"P3", "5 3", "255"}, lines[:3])
}

func TestEncodePPM_PixelData(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, color.RGBA{A: 255})
		}
	}
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(2, 1, color.RGBA{G: 128, A: 255})
	img.Set(4, 2, color.RGBA{B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, img))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "255 0 0 0 0 0 0 0 0 0 0 0 0 0 0", lines[3])
	assert.Equal(t, "0 0 0 0 0 0 0 128 0 0 0 0 0 0 0", lines[4])
	assert.Equal(t, "0 0 0 0 0 0 0 0 0 0 0 0 0 0 255", lines[5])
}

func TestEncodePPM_SplitsLongLines(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 204, B: 153, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, img))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204", lines[3])
	assert.Equal(t, "153 255 204 153 255 204 153 255 204 153 255 204 153", lines[4])
	assert.Equal(t, "255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204", lines[5])
	assert.Equal(t, "153 255 204 153 255 204 153 255 204 153 255 204 153", lines[6])
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 70)
	}
}

func TestEncodePPM_EndsWithNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePPM(&buf, image.NewRGBA(image.Rect(0, 0, 5, 3))))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
