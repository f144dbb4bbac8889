package gui

import (
	"image/color"

	"flipface.dev/gui/assets"
	"flipface.dev/gui/text"
)

type Styles struct {
	hours   text.Style
	minutes text.Style
}

type Colors struct {
	Background color.NRGBA
	Text       color.NRGBA
}

var faceTheme = Colors{
	Background: rgb(0x000000),
	Text:       rgb(0xffffff),
}

func NewStyles() Styles {
	return Styles{
		hours: text.Style{
			Face:      mustFace(assets.Bold, 30),
			Alignment: text.AlignCenter,
		},
		minutes: text.Style{
			Face:      mustFace(assets.Regular, 16),
			Alignment: text.AlignCenter,
		},
	}
}
