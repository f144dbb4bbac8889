package gesture

import (
	"testing"

	"flipface.dev/accel"
)

func s(x, y, z int16) accel.Sample {
	return accel.Sample{X: x, Y: y, Z: z}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		samples []accel.Sample
		want    bool
	}{
		{"empty", nil, false},
		{"flip", []accel.Sample{s(0, 800, 0), s(0, 0, -900)}, true},
		{"z before y", []accel.Sample{s(0, 0, -900), s(0, 800, 0)}, false},
		{"same sample", []accel.Sample{s(0, 800, -900)}, true},
		{"y at threshold", []accel.Sample{s(0, Threshold, 0), s(0, 0, -900)}, false},
		{"z at threshold", []accel.Sample{s(0, 900, 0), s(0, 0, -Threshold)}, false},
		{"no z", []accel.Sample{s(0, 900, 0), s(0, 100, 200), s(0, -900, 900)}, false},
		{"x ignored", []accel.Sample{s(900, 0, 0), s(-900, 0, -900)}, false},
		{
			"late z",
			[]accel.Sample{s(0, 0, -1000), s(0, 0, 0), s(0, 776, 0), s(0, 0, 0), s(0, 0, 0), s(0, 0, -776)},
			true,
		},
		{
			"earlier z ignored",
			[]accel.Sample{s(0, 0, -1000), s(0, 1000, 0), s(0, 0, 0)},
			false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Detect(test.samples); got != test.want {
				t.Errorf("Detect(%v) = %v, want %v", test.samples, got, test.want)
			}
		})
	}
}

func TestDetectProperties(t *testing.T) {
	const n = 12
	for i := range n {
		for j := range n {
			batch := make([]accel.Sample, n)
			batch[i].Y = Threshold + 1
			batch[j].Z = -Threshold - 1
			want := j >= i
			if got := Detect(batch); got != want {
				t.Errorf("y at %d, z at %d: got %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestSplitAcrossBatches(t *testing.T) {
	first := []accel.Sample{s(0, 0, 0), s(0, 900, 0)}
	second := []accel.Sample{s(0, 0, -900), s(0, 0, 0)}
	if Detect(first) || Detect(second) {
		t.Error("flip detected across batch boundary")
	}
}
