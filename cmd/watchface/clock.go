package main

import (
	"fmt"
	"strconv"
	"time"
)

// clockOffset returns the adjustment that moves now to the Unix time in
// seconds given by epoch.
func clockOffset(epoch string, now time.Time) (time.Duration, error) {
	sec, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("clock: invalid epoch %q", epoch)
	}
	return time.Unix(sec, 0).Sub(now), nil
}
