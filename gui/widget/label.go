// Package widget contains the drawable elements of the watch face.
package widget

import (
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"

	"flipface.dev/gui/op"
	"flipface.dev/gui/text"
)

// Label lays out txt in width and returns its size.
func Label(ops op.Ctx, l text.Style, width int, col color.NRGBA, txt string) image.Point {
	for line := range l.Layout(width, txt) {
		op.TextOp{
			Color: col,
			Face:  l.Face,
			Dot:   fixed.P(line.Dot.X, line.Dot.Y),
			Txt:   line.Text,
		}.Add(ops)
	}
	return l.Measure(width, txt)
}
