package words

import "testing"

func TestNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "ZERO"},
		{7, "SEVEN"},
		{10, "TEN"},
		{11, "ELEVEN"},
		{19, "NINETEEN"},
		{20, "TWENTY"},
		{21, "TWENTY ONE"},
		{45, "FORTY FIVE"},
		{59, "FIFTY NINE"},
		{99, "NINETY NINE"},
		{-1, ""},
		{100, ""},
	}
	for _, test := range tests {
		if got := Number(test.n); got != test.want {
			t.Errorf("Number(%d) = %q, want %q", test.n, got, test.want)
		}
	}
}

func TestHour(t *testing.T) {
	tests := []struct {
		h    int
		want string
	}{
		{0, "TWELVE"},
		{1, "ONE"},
		{11, "ELEVEN"},
		{12, "TWELVE"},
		{13, "ONE"},
		{23, "ELEVEN"},
	}
	for _, test := range tests {
		if got := Hour(test.h); got != test.want {
			t.Errorf("Hour(%d) = %q, want %q", test.h, got, test.want)
		}
	}
}

func TestMinutesFit(t *testing.T) {
	for m := range 60 {
		if Minute(m) == "" {
			t.Errorf("Minute(%d) is empty", m)
		}
	}
}
