// Package layout contains rectangle helpers for placing the face.
package layout

import (
	"image"
)

type Rectangle image.Rectangle

// Center returns the position of a rectangle of size sz centered in r.
func (r Rectangle) Center(sz image.Point) image.Point {
	off := r.Size().Sub(sz).Div(2)
	return r.Min.Add(off)
}

func (r Rectangle) Dx() int {
	return image.Rectangle(r).Dx()
}

func (r Rectangle) Dy() int {
	return image.Rectangle(r).Dy()
}

func (r Rectangle) Size() image.Point {
	return image.Rectangle(r).Size()
}

// Band returns the horizontal strip of r starting y pixels from the top
// with the given height, clamped to r.
func (r Rectangle) Band(y, height int) Rectangle {
	_, rest := r.CutTop(y)
	band, _ := rest.CutTop(height)
	return band
}

func (r Rectangle) CutTop(height int) (top Rectangle, bottom Rectangle) {
	cuty := min(r.Min.Y+height, r.Max.Y)
	return r.cutY(cuty)
}

func (r Rectangle) cutY(cuty int) (top Rectangle, bottom Rectangle) {
	top = Rectangle(image.Rect(r.Min.X, r.Min.Y, r.Max.X, cuty))
	bottom = Rectangle(image.Rect(r.Min.X, cuty, r.Max.X, r.Max.Y))
	return top, bottom
}
