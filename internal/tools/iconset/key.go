package iconset

import (
	"image"
	"image/color"
)

const (
	// NearWhite is the per-channel value at or above which a pixel counts as
	// background.
	NearWhite = 245
	// MinVisibleAlpha is the alpha below which a pixel is already treated as
	// transparent and left alone.
	MinVisibleAlpha = 10
)

var transparentWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0}

// KeyBackground replaces every visible near-white pixel of img with fully
// transparent white, in place, and returns how many pixels it changed.
func KeyBackground(img *image.NRGBA) int {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	count := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			if row[i+3] < MinVisibleAlpha {
				continue
			}
			if row[i] >= NearWhite && row[i+1] >= NearWhite && row[i+2] >= NearWhite {
				row[i], row[i+1], row[i+2], row[i+3] = transparentWhite.R, transparentWhite.G, transparentWhite.B, transparentWhite.A
				count++
			}
		}
	}
	return count
}

// VisibleBounds returns the smallest rectangle holding every pixel with
// non-zero alpha. ok is false when img is fully transparent.
func VisibleBounds(img *image.NRGBA) (r image.Rectangle, ok bool) {
	if img == nil {
		return image.Rectangle{}, false
	}
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[off+3] != 0 {
				minX = min(minX, x)
				maxX = max(maxX, x)
				minY = min(minY, y)
				maxY = max(maxY, y)
			}
			off += 4
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
