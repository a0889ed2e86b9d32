package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrUnsupportedFormat is returned when an output format is not recognized
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Formats lists the output formats accepted by EncodeImage and SaveImage
var Formats = []string{"png", "bmp", "tiff", "ppm"}

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// At returns the color of pixel (x, y) in [0,1]
func (d *ImageData) At(x, y int) core.Vec3 {
	return d.Pixels[y*d.Width+x]
}

// LoadImage loads a PNG, JPEG, BMP or TIFF image and converts it to a Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (format detected from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// FormatFromPath returns the output format implied by a file extension
func FormatFromPath(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "png", "bmp", "ppm":
		return ext, nil
	case "tif", "tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// EncodeImage writes img to w in the given format
func EncodeImage(w io.Writer, img *image.RGBA, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "ppm":
		return encodePPM(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// SaveImage writes img to filename, choosing the format from the extension
func SaveImage(filename string, img *image.RGBA) error {
	format, err := FormatFromPath(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := EncodeImage(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return file.Close()
}

// encodePPM writes a plain-text (P3) PPM with one pixel per line
func encodePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return bw.Flush()
}
