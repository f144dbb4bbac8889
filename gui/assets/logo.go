package assets

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	imageutil "flipface.dev/image"
	"flipface.dev/sprite"
)

// LogoSize bounds every logo frame.
var LogoSize = image.Pt(110, 123)

// Logo contains the frames of the logo animation, each trimmed to its
// opaque pixels. The first frame is the vehicle, the last the emblem.
var Logo = logoFrames()

type vertex struct{ x, y float64 }

var (
	vehicle = []vertex{
		{10, 95}, {20, 75}, {40, 70}, {70, 70}, {90, 75}, {100, 95},
		{100, 112}, {85, 115}, {70, 108}, {40, 108}, {25, 115}, {10, 112},
	}
	emblem = []vertex{
		{15, 60}, {10, 15}, {40, 22}, {70, 22}, {100, 15}, {95, 60},
		{80, 95}, {68, 118}, {58, 106}, {52, 106}, {42, 118}, {30, 95},
	}
	// Eyes appear in the second half of the animation.
	eyes = [][2]vertex{
		{{32, 45}, {48, 53}},
		{{62, 45}, {78, 53}},
	}

	logoFrom = colorful.Color{R: 0.54, G: 0.54, B: 0.56}
	logoTo   = colorful.Color{R: 0.82, G: 0.12, B: 0.16}
	outline  = color.NRGBA{R: 0xe9, G: 0xf2, B: 0xea, A: 0xff}
)

func logoFrames() [sprite.NumFrames]*image.RGBA {
	var frames [sprite.NumFrames]*image.RGBA
	for i := range frames {
		t := float64(i) / float64(sprite.NumFrames-1)
		frames[i] = imageutil.Trim(logoFrame(t))
	}
	return frames
}

func logoFrame(t float64) *image.RGBA {
	w, h := LogoSize.X, LogoSize.Y
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	r, g, b := logoFrom.BlendHcl(logoTo, t).Clamped().RGB255()
	filler.SetColor(color.NRGBA{R: r, G: g, B: b, A: 0xff})
	outlinePath(filler, t)
	filler.Draw()

	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetStroke(fixed.I(2), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(outline)
	outlinePath(dasher, t)
	if t >= 0.5 {
		for _, e := range eyes {
			rasterx.AddRect(e[0].x, e[0].y, e[1].x, e[1].y, 0, dasher)
		}
	}
	dasher.Draw()
	return img
}

// outlinePath adds the outline interpolated between the vehicle and the
// emblem.
func outlinePath(p rasterx.Adder, t float64) {
	for i := range vehicle {
		a, b := vehicle[i], emblem[i]
		pt := rasterx.ToFixedP(a.x+(b.x-a.x)*t, a.y+(b.y-a.y)*t)
		if i == 0 {
			p.Start(pt)
		} else {
			p.Line(pt)
		}
	}
	p.Stop(true)
}
