package layout

import (
	"image"
	"testing"
)

func TestCenter(t *testing.T) {
	r := Rectangle(image.Rect(0, 0, 240, 240))
	if got, want := r.Center(image.Pt(144, 168)), image.Pt(48, 36); got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}

func TestBand(t *testing.T) {
	r := Rectangle(image.Rect(10, 20, 154, 188))
	tests := []struct {
		y, h int
		want image.Rectangle
	}{
		{114, 40, image.Rect(10, 134, 154, 174)},
		{148, 30, image.Rect(10, 168, 154, 188)},
		{160, 30, image.Rect(10, 180, 154, 188)},
		{200, 30, image.Rect(10, 188, 154, 188)},
	}
	for _, test := range tests {
		if got := image.Rectangle(r.Band(test.y, test.h)); got != test.want {
			t.Errorf("Band(%d, %d) = %v, want %v", test.y, test.h, got, test.want)
		}
	}
}
