package main

import (
	"testing"
	"time"
)

func TestClockOffset(t *testing.T) {
	boot := time.Unix(0, 0).Add(3 * time.Second)
	off, err := clockOffset("1709294730", boot)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 1, 12, 5, 30, 0, time.UTC)
	if got := boot.Add(off); !got.Equal(want) {
		t.Errorf("adjusted clock is %v, want %v", got.UTC(), want)
	}
	if _, err := clockOffset("noon", boot); err == nil {
		t.Error("invalid epoch accepted")
	}
}
