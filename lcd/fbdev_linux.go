package lcd

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"golang.org/x/sys/unix"

	"flipface.dev/image/rgb565"
)

// FBDev is a Linux framebuffer device in 16-bit RGB565 mode.
type FBDev struct {
	fb   *rgb565.Image
	fd   int
	mmap []byte
}

const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type fbBitfield struct {
	Offset, Length, MsbRight uint32
}

// fbVarScreenInfo mirrors struct fb_var_screeninfo.
type fbVarScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp fbBitfield
	NonStd, Activate         uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode, Rotate      uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// fbFixScreenInfo mirrors struct fb_fix_screeninfo.
type fbFixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

func OpenFBDev(dev string) (*FBDev, error) {
	fd, err := unix.Open(dev, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("lcd: %s: %w", dev, err)
	}
	l, err := setupFBDev(fd)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("lcd: %s: %w", dev, err)
	}
	return l, nil
}

func setupFBDev(fd int) (*FBDev, error) {
	var vinfo fbVarScreenInfo
	if err := ioctl(fd, "FBIOGET_VSCREENINFO", fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		return nil, err
	}
	var finfo fbFixScreenInfo
	if err := ioctl(fd, "FBIOGET_FSCREENINFO", fbioGetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		return nil, err
	}
	if err := checkFBDev(&vinfo, &finfo); err != nil {
		return nil, err
	}
	mmap, err := unix.Mmap(fd, 0, int(finfo.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("framebuffer mmap failed: %w", err)
	}
	const pixSize = int(unsafe.Sizeof(rgb565.Color{}))
	fb := &rgb565.Image{
		Pix:    unsafe.Slice((*rgb565.Color)(unsafe.Pointer(unsafe.SliceData(mmap))), len(mmap)/pixSize),
		Stride: int(finfo.LineLength) / pixSize,
		Rect:   image.Rect(0, 0, int(vinfo.XRes), int(vinfo.YRes)),
	}
	return &FBDev{fb: fb, fd: fd, mmap: mmap}, nil
}

// checkFBDev verifies that the mapped memory covers every visible row
// of 16-bit pixels.
func checkFBDev(vinfo *fbVarScreenInfo, finfo *fbFixScreenInfo) error {
	if vinfo.BitsPerPixel != 16 {
		return fmt.Errorf("unsupported depth %d", vinfo.BitsPerPixel)
	}
	if finfo.LineLength == 0 || vinfo.XRes == 0 || vinfo.YRes == 0 {
		return errors.New("empty framebuffer")
	}
	if uint64(finfo.LineLength) < uint64(vinfo.XRes)*2 {
		return fmt.Errorf("line length %d too short for %d pixels", finfo.LineLength, vinfo.XRes)
	}
	if uint64(finfo.SmemLen) < uint64(finfo.LineLength)*uint64(vinfo.YRes) {
		return fmt.Errorf("framebuffer memory %d too small for %d lines of %d bytes", finfo.SmemLen, vinfo.YRes, finfo.LineLength)
	}
	return nil
}

func ioctl(fd int, name string, req uintptr, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg)); errno != 0 {
		return fmt.Errorf("ioctl(%s): %w", name, errno)
	}
	return nil
}

func (l *FBDev) Framebuffer() draw.RGBA64Image {
	return l.fb
}

// Dirty is a no-op: the framebuffer memory is scanned out directly.
func (l *FBDev) Dirty(sr image.Rectangle) error {
	return nil
}

func (l *FBDev) Close() error {
	if l.mmap != nil {
		unix.Munmap(l.mmap)
	}
	err := unix.Close(l.fd)
	*l = FBDev{}
	return err
}
