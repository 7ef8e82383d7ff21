package itinerary

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"strings"

	"github.com/disintegration/imaging"
)

const thumbWidth = 240

// NormalizeThumbnail re-encodes a thumbnail data URL as a bounded JPEG so
// oversized captures never bloat the stored collection. Best-effort: any
// input that fails to parse or decode is returned unchanged.
func NormalizeThumbnail(dataURL string) string {
	if dataURL == "" {
		return ""
	}

	comma := strings.Index(dataURL, ",")
	if !strings.HasPrefix(dataURL, "data:image/") || !strings.Contains(dataURL, ";base64,") || comma < 0 {
		return dataURL
	}

	raw, err := base64.StdEncoding.DecodeString(dataURL[comma+1:])
	if err != nil {
		return dataURL
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return dataURL
	}

	if img.Bounds().Dx() > thumbWidth {
		img = imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return dataURL
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
