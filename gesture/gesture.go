// Package gesture detects the wrist flip gesture in a batch of
// accelerometer samples.
package gesture

import "flipface.dev/accel"

// Threshold is the acceleration in milli-g an axis must exceed.
const Threshold = 775

// Detect reports whether samples contain a flip: a sample with a y value
// above Threshold followed, at the same or a later index, by a sample
// with a z value below -Threshold.
//
// Batches are evaluated independently. A y spike at the end of one batch
// followed by a z spike in the next is not detected.
func Detect(samples []accel.Sample) bool {
	i := 0
	for i < len(samples) && samples[i].Y <= Threshold {
		i++
	}
	for ; i < len(samples); i++ {
		if samples[i].Z < -Threshold {
			return true
		}
	}
	return false
}
