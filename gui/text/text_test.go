package text

import (
	"image"
	"slices"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestLayout(t *testing.T) {
	type line struct {
		str   string
		width int
		dot   image.Point
	}
	tests := []struct {
		txt   string
		width int
		align Alignment
		want  []line
	}{
		{
			"TWELVE", 100, AlignStart,
			[]line{{"TWELVE", 42, image.Pt(0, 11)}},
		},
		{
			"FORTY FIVE", 40, AlignStart,
			[]line{{"FORTY", 35, image.Pt(0, 11)}, {"FIVE", 28, image.Pt(0, 24)}},
		},
		{
			"FORTY FIVE", 40, AlignCenter,
			[]line{{"FORTY", 35, image.Pt(2, 11)}, {"FIVE", 28, image.Pt(6, 24)}},
		},
		{
			"ONE", 100, AlignEnd,
			[]line{{"ONE", 21, image.Pt(79, 11)}},
		},
		{
			"ONE\n\nTWO", 100, AlignStart,
			[]line{{"ONE", 21, image.Pt(0, 11)}, {"", 0, image.Pt(0, 24)}, {"TWO", 21, image.Pt(0, 37)}},
		},
	}
	for _, test := range tests {
		st := Style{
			Face:      basicfont.Face7x13,
			Alignment: test.align,
		}
		var got []line
		for l := range st.Layout(test.width, test.txt) {
			got = append(got, line{l.Text, l.Width, l.Dot})
		}
		if !slices.Equal(got, test.want) {
			t.Errorf("%q: got %v, want %v", test.txt, got, test.want)
		}
	}
}

func TestMeasure(t *testing.T) {
	st := Style{Face: basicfont.Face7x13}
	if got, want := st.Measure(40, "FORTY FIVE"), image.Pt(35, 26); got != want {
		t.Errorf("Measure = %v, want %v", got, want)
	}
}

func BenchmarkLayout(b *testing.B) {
	st := Style{Face: basicfont.Face7x13, Alignment: AlignCenter}
	for range b.N {
		for range st.Layout(144, "TWENTY THREE") {
		}
	}
}
