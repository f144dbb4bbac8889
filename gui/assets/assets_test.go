package assets

import (
	"image"
	"testing"
)

func TestLogo(t *testing.T) {
	for i, f := range Logo {
		if b := f.Bounds(); b.Empty() || !b.In(image.Rectangle{Max: LogoSize}) {
			t.Errorf("frame %d: bounds %v", i, f.Bounds())
		}
		if f.RGBAAt(55, 100).A == 0 {
			t.Errorf("frame %d: center is transparent", i)
		}
		if f.RGBAAt(1, 1).A != 0 {
			t.Errorf("frame %d: corner is not transparent", i)
		}
	}
	first, last := Logo[0].RGBAAt(55, 100), Logo[len(Logo)-1].RGBAAt(55, 100)
	if first.R >= last.R {
		t.Errorf("logo does not shift towards red: %v -> %v", first, last)
	}
	// The emblem's upper left is empty in the vehicle frame.
	if Logo[0].RGBAAt(20, 25).A != 0 || Logo[len(Logo)-1].RGBAAt(20, 25).A == 0 {
		t.Error("frames do not morph from vehicle to emblem")
	}
}
