package iconset

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// FillRatio is the largest share of a canvas side the scaled image may use.
const FillRatio = 0.84

// DefaultSizes are the canvas sizes a Chrome extension manifest expects.
var DefaultSizes = []int{16, 48, 128}

// Trim crops img to its visible pixels. A fully transparent image is
// returned as is.
func Trim(img *image.NRGBA) *image.NRGBA {
	r, ok := VisibleBounds(img)
	if !ok || r == img.Bounds() {
		return img
	}
	return imaging.Crop(img, r)
}

// FitSize scales a w×h image uniformly so its longer side spans FillRatio of
// a size×size canvas. Each result dimension is floored and at least 1.
func FitSize(w, h, size int) (int, int) {
	if w <= 0 || h <= 0 || size <= 0 {
		return 1, 1
	}
	target := float64(size) * FillRatio
	scale := min(target/float64(w), target/float64(h))
	nw := max(1, int(float64(w)*scale))
	nh := max(1, int(float64(h)*scale))
	return nw, nh
}

// Placement returns where Render puts a w×h image on a size×size canvas.
func Placement(w, h, size int) image.Rectangle {
	nw, nh := FitSize(w, h, size)
	ox, oy := (size-nw)/2, (size-nh)/2
	return image.Rect(ox, oy, ox+nw, oy+nh)
}

// Render draws src, Lanczos-resampled and centered, onto a new transparent
// size×size canvas. The resized image is its own blend mask.
func Render(src image.Image, size int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	b := src.Bounds()
	dst := Placement(b.Dx(), b.Dy(), size)

	resized := imaging.Resize(src, dst.Dx(), dst.Dy(), imaging.Lanczos)
	origin := resized.Bounds().Min
	draw.DrawMask(canvas, dst, resized, origin, resized, origin, draw.Over)
	return canvas
}
