//go:build !linux

package lcd

import (
	"errors"
	"image"
	"image/draw"
)

type FBDev struct{}

func OpenFBDev(dev string) (*FBDev, error) {
	return nil, errors.New("lcd: framebuffer devices are only supported on Linux")
}

func (l *FBDev) Framebuffer() draw.RGBA64Image {
	return nil
}

func (l *FBDev) Dirty(sr image.Rectangle) error {
	return nil
}

func (l *FBDev) Close() error {
	return nil
}
