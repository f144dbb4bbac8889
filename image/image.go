// Package image contains helpers for the standard image types.
package image

import "image"

// OpaqueBounds returns the smallest rectangle that contains every pixel
// of img with non-zero alpha. The result is empty for a fully
// transparent image.
func OpaqueBounds(img image.RGBA64Image) image.Rectangle {
	b := img.Bounds()
	r := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBA64At(x, y).A == 0 {
				continue
			}
			r.Min.X = min(r.Min.X, x)
			r.Min.Y = min(r.Min.Y, y)
			r.Max.X = max(r.Max.X, x+1)
			r.Max.Y = max(r.Max.Y, y+1)
		}
	}
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// Trim returns the part of img inside its opaque bounds. Pixel
// coordinates are unchanged.
func Trim(img *image.RGBA) *image.RGBA {
	return img.SubImage(OpaqueBounds(img)).(*image.RGBA)
}
