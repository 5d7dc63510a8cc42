// Package imageutil loads and converts images into the packed RGBA form
// 2D panels display. Decoding supports PNG and JPEG sources from files,
// readers or HTTP URLs; scaling goes through golang.org/x/image/draw.
package imageutil

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/strasdat/vviz/pkg/component"
	"github.com/strasdat/vviz/pkg/errors"
)

func imageErr(op string, err error) error {
	return &errors.VizError{
		Op:        op,
		Kind:      errors.KindImage,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// Decode reads one image from r and converts it to packed RGBA.
func Decode(r io.Reader) (component.ImageRGBA8, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return component.ImageRGBA8{}, imageErr("imageutil.Decode", err)
	}
	return FromImage(img), nil
}

// Load reads an image from a file.
func Load(path string) (component.ImageRGBA8, error) {
	f, err := os.Open(path)
	if err != nil {
		return component.ImageRGBA8{}, imageErr("imageutil.Load", err)
	}
	defer f.Close()
	return Decode(f)
}

// Fetch downloads and decodes an image over HTTP.
func Fetch(client *http.Client, url string) (component.ImageRGBA8, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(url)
	if err != nil {
		return component.ImageRGBA8{}, imageErr("imageutil.Fetch", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return component.ImageRGBA8{}, imageErr("imageutil.Fetch",
			fmt.Errorf("GET %s: %s", url, resp.Status))
	}
	return Decode(resp.Body)
}

// FromImage converts any decoded image to packed RGBA.
func FromImage(img image.Image) component.ImageRGBA8 {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return component.ImageRGBA8{
		Width:  b.Dx(),
		Height: b.Dy(),
		Bytes:  rgba.Pix,
	}
}

// ToImage wraps the packed bytes as an image.RGBA sharing the backing
// slice.
func ToImage(img component.ImageRGBA8) *image.RGBA {
	return &image.RGBA{
		Pix:    img.Bytes,
		Stride: 4 * img.Width,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

// Scale resamples an image to the given size with bilinear filtering.
func Scale(img component.ImageRGBA8, width, height int) component.ImageRGBA8 {
	src := ToImage(img)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return component.ImageRGBA8{Width: width, Height: height, Bytes: dst.Pix}
}
