package lcd

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"flipface.dev/image/rgb565"
)

// PNG is a display that writes every updated frame to a directory as
// a numbered PNG file.
type PNG struct {
	fb  *rgb565.Image
	dir string
	n   int
	enc png.Encoder
}

func NewPNG(dir string, dims image.Point) (*PNG, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("lcd: %w", err)
	}
	return &PNG{
		fb:  rgb565.New(image.Rectangle{Max: dims}),
		dir: dir,
		enc: png.Encoder{CompressionLevel: png.BestSpeed},
	}, nil
}

func (l *PNG) Framebuffer() draw.RGBA64Image {
	return l.fb
}

func (l *PNG) Dirty(sr image.Rectangle) error {
	name := filepath.Join(l.dir, fmt.Sprintf("frame%05d.png", l.n))
	l.n++
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("lcd: %w", err)
	}
	if err := l.enc.Encode(f, l.fb); err != nil {
		f.Close()
		return fmt.Errorf("lcd: %s: %w", name, err)
	}
	return f.Close()
}
