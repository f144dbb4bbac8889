// Package rgb565 contains an [image.RGBA64Image] implementation of a 16-bit
// RGB565 framebuffer, the native pixel format of the watch displays.
package rgb565

import (
	"image"
	"image/color"
	"image/draw"
)

type Image struct {
	Pix    []Color
	Stride int
	Rect   image.Rectangle
}

// Color is a little endian RGB565 pixel.
type Color [2]byte

func New(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]Color, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Image) PixOffset(x, y int) int {
	off := image.Pt(x, y).Sub(p.Rect.Min)
	return off.Y*p.Stride + off.X
}

func (p *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return new(Image)
	}
	start := p.PixOffset(r.Min.X, r.Min.Y)
	end := p.PixOffset(r.Max.X-1, r.Max.Y-1) + 1
	return &Image{
		Pix:    p.Pix[start:end],
		Stride: p.Stride,
		Rect:   r,
	}
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = FromColor(c)
}

func (p *Image) At(x, y int) color.Color {
	return p.RGBA64At(x, y)
}

func (p *Image) SetRGBA64(x, y int, c color.RGBA64) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = RGB888ToRGB565(uint8(c.R>>8), uint8(c.G>>8), uint8(c.B>>8))
}

func (p *Image) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.RGBA64{}
	}
	r, g, b := RGB565ToRGB888(p.Pix[p.PixOffset(x, y)])
	r16 := uint16(r)<<8 | uint16(r)
	g16 := uint16(g)<<8 | uint16(g)
	b16 := uint16(b)<<8 | uint16(b)
	return color.RGBA64{A: 0xffff, R: r16, G: g16, B: b16}
}

// Draw is like [draw.Draw] with fast paths for opaque uniform fills.
func (p *Image) Draw(dr image.Rectangle, src image.Image, sp image.Point, op draw.Op) {
	dr = dr.Intersect(p.Rect)
	if dr.Empty() {
		return
	}
	if src, ok := src.(*image.Uniform); ok {
		if _, _, _, a := src.C.RGBA(); a == 0xffff || op == draw.Src {
			p.Fill(dr, FromColor(src.C))
			return
		}
	}
	draw.Draw(p, dr, src, sp, op)
}

// Fill sets every pixel in r to c.
func (p *Image) Fill(r image.Rectangle, c Color) {
	r = r.Intersect(p.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := p.PixOffset(r.Min.X, y)
		row := p.Pix[off : off+r.Dx()]
		for x := range row {
			row[x] = c
		}
	}
}

func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB888ToRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func RGB888ToRGB565(r, g, b uint8) Color {
	u16 := uint16(b)>>3 | uint16(g&0xfc)<<3 | uint16(r&0xf8)<<8
	return Color{byte(u16), byte(u16 >> 8)}
}

func RGB565ToRGB888(rgb Color) (r, g, b uint8) {
	c := uint16(rgb[1])<<8 | uint16(rgb[0])
	r = uint8(c>>8) & 0xf8
	r |= r >> 5
	g = uint8(c>>3) & 0xfc
	g |= g >> 6
	b = uint8(c << 3)
	b |= b >> 5
	return
}

// Luma returns the approximate brightness of c, for monochrome displays.
func Luma(c Color) uint8 {
	r, g, b := RGB565ToRGB888(c)
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}
