// Package op implements a retained list of drawing operations. Drawing
// an op list compares it with the previous frame and only redraws the
// regions that changed.
package op

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Ops struct {
	ops      []any
	uniforms map[color.NRGBA]*image.Uniform

	prevOps  map[frameOp]bool
	frameOps map[frameOp]bool
	frame    []frameOp
}

// Ctx records ops into an Ops. The zero Ctx discards everything.
type Ctx struct {
	beginIdx int
	ops      *Ops
}

type frameOp struct {
	state drawState
	op    drawOp
}

type drawState struct {
	pos  image.Point
	clip image.Rectangle
}

func (o *Ctx) add(op any) {
	if o.ops == nil {
		return
	}
	o.ops.ops = append(o.ops.ops, op)
}

// Begin starts recording a macro. Ops recorded until the matching End
// are only drawn through the returned CallOp.
func (o *Ctx) Begin() Ctx {
	if o.ops == nil {
		return Ctx{}
	}
	o.add(beginOp{})
	o.beginIdx = len(o.ops.ops)
	return Ctx{ops: o.ops}
}

func (o *Ctx) End() CallOp {
	if o.ops == nil {
		return CallOp{}
	}
	if o.beginIdx == 0 {
		panic("End without a Begin")
	}
	o.add(endOp{})
	call := CallOp{startIdx: o.beginIdx}
	o.beginIdx = 0
	return call
}

// Reset clears the op list for a new frame. The ops of the previous
// Draw are kept for comparison.
func (o *Ops) Reset() Ctx {
	o.ops = o.ops[:0]
	if o.uniforms == nil {
		o.uniforms = make(map[color.NRGBA]*image.Uniform)
	}
	if o.frameOps == nil {
		o.frameOps = make(map[frameOp]bool)
	}
	if o.prevOps == nil {
		o.prevOps = make(map[frameOp]bool)
	}
	return Ctx{ops: o}
}

// Invalidate forces the next Draw to redraw everything.
func (o *Ops) Invalidate() {
	if o.frameOps == nil {
		o.frameOps = make(map[frameOp]bool)
	}
	for op := range o.frameOps {
		delete(o.frameOps, op)
	}
	o.frameOps[frameOp{state: drawState{clip: infinite}}] = true
}

var infinite = image.Rect(-1e9, -1e9, 1e9, 1e9)

func (o *Ops) nrgba(c color.NRGBA) *image.Uniform {
	if o == nil {
		return image.NewUniform(c)
	}
	if u, ok := o.uniforms[c]; ok {
		return u
	}
	u := image.NewUniform(c)
	o.uniforms[c] = u
	return u
}

// Draw draws the ops that differ from the previous frame along with
// every op overlapping them, and returns the damaged rectangle.
func (o *Ops) Draw(dst draw.Image) image.Rectangle {
	o.frameOps, o.prevOps = o.prevOps, o.frameOps
	// Clear for GC.
	for i := range o.frameOps {
		delete(o.frameOps, i)
	}
	for i := range o.frame {
		o.frame[i] = frameOp{}
	}
	o.frame = o.frame[:0]
	bounds := dst.Bounds()
	o.serialize(drawState{clip: bounds}, 0)
	var clip image.Rectangle
	for _, op := range o.frame {
		o.frameOps[op] = true
		if !o.prevOps[op] {
			clip = clip.Union(op.state.clip)
		} else {
			delete(o.prevOps, op)
		}
	}
	for op := range o.prevOps {
		clip = clip.Union(op.state.clip)
	}
	clip = clip.Intersect(bounds)
	for _, op := range o.frame {
		clip := clip.Intersect(op.state.clip)
		if clip.Empty() {
			continue
		}
		pos := clip.Min.Sub(op.state.pos)
		op.op.draw(dst, clip, pos)
	}
	return clip
}

func (o *Ops) serialize(state drawState, from int) {
	macros := 0
	origState := state
	for i := from; i < len(o.ops); i++ {
		op := o.ops[i]
		switch op.(type) {
		case beginOp:
			macros++
			continue
		case endOp:
			if macros == 0 {
				return
			}
			macros--
			continue
		}
		if macros > 0 {
			continue
		}
		switch op := op.(type) {
		case offsetOp:
			state.pos = state.pos.Add(image.Point(op))
			continue
		case ClipOp:
			r := image.Rectangle(op).Add(state.pos)
			state.clip = state.clip.Intersect(r)
			continue
		case CallOp:
			o.serialize(state, op.startIdx)
		case drawOp:
			r := op.bounds().Add(state.pos)
			state.clip = state.clip.Intersect(r)
			if !state.clip.Empty() {
				o.frame = append(o.frame, frameOp{state, op})
			}
		}
		state = origState
	}
}

type offsetOp image.Point

func (o offsetOp) Add(ops Ctx) {
	ops.add(o)
}

// Offset translates the following op. Offsets and clips apply to
// the next draw or call op only.
func Offset(ops Ctx, off image.Point) {
	offsetOp(off).Add(ops)
}

func Position(ops Ctx, c CallOp, off image.Point) {
	Offset(ops, off)
	c.Add(ops)
}

type ClipOp image.Rectangle

func (c ClipOp) Add(ops Ctx) {
	ops.add(c)
}

// ColorOp fills the current clip with a color.
func ColorOp(ops Ctx, col color.NRGBA) {
	ops.add(imageOp{ops.ops.nrgba(col)})
}

func ImageOp(ops Ctx, img image.Image) {
	ops.add(imageOp{img})
}

type imageOp struct {
	src image.Image
}

func (im imageOp) bounds() image.Rectangle {
	return im.src.Bounds()
}

func (im imageOp) draw(dst draw.Image, dr image.Rectangle, pos image.Point) {
	drawMask(dst, dr, im.src, pos, nil, image.Point{})
}

type CallOp struct {
	startIdx int
}

func (c CallOp) Add(ops Ctx) {
	if c.startIdx > 0 {
		ops.add(c)
	}
}

type beginOp struct{}

type endOp struct{}

type drawOp interface {
	bounds() image.Rectangle
	draw(dst draw.Image, dr image.Rectangle, pos image.Point)
}

// TextOp draws a single line of text with its baseline origin at Dot.
type TextOp struct {
	Color color.NRGBA
	Face  font.Face
	Dot   fixed.Point26_6
	Txt   string
}

func (t TextOp) bounds() image.Rectangle {
	return t.glyphs(nil, image.Rectangle{}, nil, image.Point{})
}

func (t TextOp) draw(dst draw.Image, dr image.Rectangle, pos image.Point) {
	t.glyphs(dst, dr, image.NewUniform(t.Color), pos)
}

func (t TextOp) glyphs(dst draw.Image, dr image.Rectangle, src image.Image, pos image.Point) image.Rectangle {
	prevC := rune(-1)
	dot := t.Dot
	var bounds image.Rectangle
	for _, c := range t.Txt {
		if prevC >= 0 {
			dot.X += t.Face.Kern(prevC, c)
		}
		gdr, mask, maskp, advance, ok := t.Face.Glyph(dot, c)
		if !ok {
			continue
		}
		bounds = bounds.Union(gdr)
		if dst != nil {
			drawMask(dst, dr, src, pos, mask, pos.Add(maskp).Sub(gdr.Min))
		}
		dot.X += advance
		prevC = c
	}
	return bounds
}

func (t TextOp) Add(ops Ctx) {
	ops.add(t)
}
