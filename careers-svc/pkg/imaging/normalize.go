// Package imaging prepares uploaded pictures (logos, avatars) for storage.
package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format (jpeg/png/webp)")

// NormalizeToJPG decodes jpeg, png or webp input, applies the EXIF
// orientation, shrinks it to maxWidth when wider (0 keeps the size) and
// re-encodes it as JPEG.
func NormalizeToJPG(input []byte, maxWidth int, quality int) ([]byte, error) {
	if len(input) == 0 {
		return nil, errors.New("empty image")
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}

	img, err := decode(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	img = orient(img, exifOrientation(bytes.NewReader(input)))
	if maxWidth > 0 {
		img = fitWidth(img, maxWidth)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func decode(r *bytes.Reader) (image.Image, error) {
	decoders := []func(io.Reader) (image.Image, error){jpeg.Decode, png.Decode, webp.Decode}
	for _, dec := range decoders {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		if img, err := dec(r); err == nil {
			return img, nil
		}
	}
	return nil, ErrUnsupportedFormat
}

func exifOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return v
}

// orient maps EXIF orientation 2..8 back to an upright image.
func orient(src image.Image, o int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var (
		dstW, dstH = w, h
		move       func(x, y int) (int, int)
	)
	switch o {
	case 2:
		move = func(x, y int) (int, int) { return w - 1 - x, y }
	case 3:
		move = func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }
	case 4:
		move = func(x, y int) (int, int) { return x, h - 1 - y }
	case 5:
		dstW, dstH = h, w
		move = func(x, y int) (int, int) { return y, x }
	case 6:
		dstW, dstH = h, w
		move = func(x, y int) (int, int) { return h - 1 - y, x }
	case 7:
		dstW, dstH = h, w
		move = func(x, y int) (int, int) { return h - 1 - y, w - 1 - x }
	case 8:
		dstW, dstH = h, w
		move = func(x, y int) (int, int) { return y, w - 1 - x }
	default:
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := move(x, y)
			dst.Set(dx, dy, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func fitWidth(src image.Image, maxW int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || w <= maxW {
		return src
	}

	newH := int(math.Round(float64(h) * float64(maxW) / float64(w)))
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
