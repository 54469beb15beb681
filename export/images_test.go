package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

// pngBytes encodes a small solid PNG for use as test image data.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

// bmpBytes fabricates a BMP header so content sniffing sees image/bmp.
func bmpBytes() []byte {
	return append([]byte("BM"), make([]byte, 64)...)
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestDecodeDataURI(t *testing.T) {
	pngData := pngBytes(t, 3, 2)

	tests := []struct {
		name    string
		ref     string
		wantErr bool
		width   int
		height  int
		ext     string
	}{
		{"png accepted with dimensions", dataURI("image/png", pngData), false, 3, 2, ".png"},
		{"bmp rejected", dataURI("image/bmp", bmpBytes()), true, 0, 0, ""},
		{"missing comma", "data:image/png;base64", true, 0, 0, ""},
		{"bad base64", "data:image/png;base64,???", true, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := decodeDataURI(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", img)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.Width != tt.width || img.Height != tt.height {
				t.Errorf("dimensions = %dx%d, expected %dx%d", img.Width, img.Height, tt.width, tt.height)
			}
			if img.Extension != tt.ext {
				t.Errorf("extension = %q, expected %q", img.Extension, tt.ext)
			}
		})
	}
}

func TestFetchImage(t *testing.T) {
	pngData := pngBytes(t, 4, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/photo.png":
			w.Write(pngData)
		case "/photo.bmp":
			w.Write(bmpBytes())
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	ctx := context.Background()

	img, err := fetchImage(ctx, server.Client(), server.URL+"/photo.png")
	if err != nil {
		t.Fatalf("fetching png: %v", err)
	}
	if img.Width != 4 || img.Height != 4 || img.Extension != ".png" {
		t.Errorf("unexpected image: %+v", img)
	}

	if _, err := fetchImage(ctx, server.Client(), server.URL+"/photo.bmp"); err == nil {
		t.Error("expected bmp fetch to be rejected")
	}
	if _, err := fetchImage(ctx, server.Client(), server.URL+"/missing.png"); err == nil {
		t.Error("expected 404 fetch to fail")
	}
}

func TestLoadImagesFiltersAndPreservesOrder(t *testing.T) {
	first := pngBytes(t, 2, 2)
	third := pngBytes(t, 6, 6)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(third)
	}))
	defer server.Close()

	refs := []string{
		dataURI("image/png", first),
		dataURI("image/bmp", bmpBytes()), // dropped
		server.URL + "/third.png",
		"data:not-an-image", // dropped
	}

	images := loadImages(context.Background(), server.Client(), refs)
	if len(images) != 2 {
		t.Fatalf("expected 2 surviving images, got %d", len(images))
	}
	if images[0].Width != 2 {
		t.Errorf("first survivor width = %d, expected 2 (order not preserved)", images[0].Width)
	}
	if images[1].Width != 6 {
		t.Errorf("second survivor width = %d, expected 6 (order not preserved)", images[1].Width)
	}
}

func TestLoadImagesEmpty(t *testing.T) {
	if images := loadImages(context.Background(), http.DefaultClient, nil); images != nil {
		t.Errorf("expected nil for no refs, got %v", images)
	}
}
