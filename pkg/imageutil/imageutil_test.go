package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/strasdat/vviz/pkg/errors"
)

func encodeTestPNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	data := encodeTestPNG(t, 3, 2, color.RGBA{R: 255, A: 255})

	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", img.Width, img.Height)
	}
	if len(img.Bytes) != 3*2*4 {
		t.Fatalf("byte count = %d, want 24", len(img.Bytes))
	}
	if img.Bytes[0] != 255 || img.Bytes[1] != 0 || img.Bytes[3] != 255 {
		t.Errorf("first pixel = %v, want opaque red", img.Bytes[:4])
	}
}

func TestDecodeGarbageFails(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Fatal("expected error")
	}
	var viz *errors.VizError
	if !errors.As(err, &viz) || viz.Kind != errors.KindImage {
		t.Errorf("error = %v, want KindImage VizError", err)
	}
}

func TestFetch(t *testing.T) {
	data := encodeTestPNG(t, 4, 4, color.RGBA{G: 128, A: 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	img, err := Fetch(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if img.Width != 4 || img.Height != 4 {
		t.Errorf("size = %dx%d, want 4x4", img.Width, img.Height)
	}
}

func TestFetchNon200Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	}))
	defer srv.Close()

	if _, err := Fetch(srv.Client(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestScale(t *testing.T) {
	data := encodeTestPNG(t, 8, 4, color.RGBA{B: 200, A: 255})
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	scaled := Scale(img, 4, 2)
	if scaled.Width != 4 || scaled.Height != 2 {
		t.Fatalf("size = %dx%d, want 4x2", scaled.Width, scaled.Height)
	}
	if scaled.Bytes[2] != 200 {
		t.Errorf("blue channel = %d, want 200", scaled.Bytes[2])
	}
}
