package itinerary

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 90, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	comma := strings.Index(dataURL, ",")
	require.GreaterOrEqual(t, comma, 0)
	raw, err := base64.StdEncoding.DecodeString(dataURL[comma+1:])
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestNormalizeThumbnailResizesWideImages(t *testing.T) {
	out := NormalizeThumbnail(pngDataURL(t, 800, 400))

	assert.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
	img := decodeDataURL(t, out)
	assert.Equal(t, thumbWidth, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestNormalizeThumbnailKeepsSmallImages(t *testing.T) {
	out := NormalizeThumbnail(pngDataURL(t, 100, 60))

	// still re-encoded to jpeg, but not upscaled
	assert.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
	img := decodeDataURL(t, out)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestNormalizeThumbnailPassesJunkThrough(t *testing.T) {
	assert.Equal(t, "", NormalizeThumbnail(""))
	assert.Equal(t, "not a url", NormalizeThumbnail("not a url"))
	assert.Equal(t, "data:image/png;base64,%%%", NormalizeThumbnail("data:image/png;base64,%%%"))

	// valid base64 that is not an image
	junk := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("plain text"))
	assert.Equal(t, junk, NormalizeThumbnail(junk))
}
