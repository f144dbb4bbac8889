package op

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"flipface.dev/image/rgb565"
)

func drawMask(dst draw.Image, dr image.Rectangle, src image.Image, pos image.Point, mask image.Image, maskOff image.Point) {
	// Optimize special cases.
	if dst, ok := dst.(*rgb565.Image); ok {
		switch mask := mask.(type) {
		case nil:
			dst.Draw(dr, src, pos, draw.Over)
			return
		case *image.Alpha:
			if src, ok := src.(*image.Uniform); ok {
				r, g, b, a := src.C.RGBA()
				col := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
				drawAlphaUniformOver(dst, dr, col, mask, maskOff)
				return
			}
		}
	}

	// General case.
	draw.DrawMask(
		dst, dr,
		src, pos,
		mask, maskOff,
		draw.Over,
	)
}

func drawAlphaUniformOver(dst *rgb565.Image, dr image.Rectangle, src color.RGBA, mask *image.Alpha, maskOff image.Point) {
	r := dr.Intersect(mask.Rect.Add(dr.Min.Sub(maskOff)))
	if r.Empty() {
		return
	}
	mp := maskOff.Add(r.Min.Sub(dr.Min))
	maxx := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		dstOff := dst.PixOffset(r.Min.X, r.Min.Y+y)
		dstPix := dst.Pix[dstOff : dstOff+maxx]
		maskOff := mask.PixOffset(mp.X, mp.Y+y)
		maskPix := mask.Pix[maskOff : maskOff+maxx]
		for x := range maxx {
			a16 := uint16(maskPix[x])
			if a16 == 0 {
				continue
			}
			s := color.RGBA{
				R: uint8(uint16(src.R) * a16 / 255),
				G: uint8(uint16(src.G) * a16 / 255),
				B: uint8(uint16(src.B) * a16 / 255),
				A: uint8(uint16(src.A) * a16 / 255),
			}
			dstPix[x] = blend888(dstPix[x], s)
		}
	}
}

func blend888(d rgb565.Color, s color.RGBA) rgb565.Color {
	dr, dg, db := rgb565.RGB565ToRGB888(d)
	a1 := uint16(255 - s.A)
	r, g, b := uint8(uint16(dr)*a1/255)+s.R, uint8(uint16(dg)*a1/255)+s.G, uint8(uint16(db)*a1/255)+s.B
	return rgb565.RGB888ToRGB565(r, g, b)
}
