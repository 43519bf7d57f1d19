package render

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned by Save for unrecognized file extensions.
var ErrUnknownFormat = errors.New("unknown image format")

// WritePPM writes the framebuffer as a binary PPM (P6): the header
// "P6\n<w> <h>\n255\n" followed by w*h RGB triples in row-major order.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.width, fb.height); err != nil {
		return err
	}
	for _, p := range fb.Pixels {
		if _, err := bw.Write([]byte{p.R, p.G, p.B}); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SavePPM writes the framebuffer to path as a binary PPM.
func (fb *Framebuffer) SavePPM(path string) error {
	return saveFile(path, fb.WritePPM)
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := range fb.height {
		for x := range fb.width {
			img.SetRGBA(x, y, fb.Pixels[y*fb.width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	return saveFile(path, func(w io.Writer) error {
		return png.Encode(w, fb.ToImage())
	})
}

// SaveBMP saves the framebuffer as a BMP file.
func (fb *Framebuffer) SaveBMP(path string) error {
	return saveFile(path, func(w io.Writer) error {
		return bmp.Encode(w, fb.ToImage())
	})
}

// Save writes the framebuffer in the format named by the extension of
// path: .ppm, .png or .bmp.
func (fb *Framebuffer) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return fb.SavePPM(path)
	case ".png":
		return fb.SavePNG(path)
	case ".bmp":
		return fb.SaveBMP(path)
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
