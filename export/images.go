package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"sync"

	// Decoders for the allowed image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Image is a document-embeddable picture. Width/Height are zero when the
// pixel dimensions could not be measured; the picture is embedded anyway.
type Image struct {
	Data      []byte
	Extension string
	Width     int
	Height    int
}

// allowedImageTypes maps acceptable MIME types to file extensions.
// Anything else is dropped from the export.
var allowedImageTypes = map[string]string{
	"image/gif":  ".gif",
	"image/jpeg": ".jpeg",
	"image/png":  ".png",
}

const maxImageBytes = 20 << 20

// loadImages resolves every reference concurrently and returns the
// successfully loaded images in their original relative order. A failed
// fetch, oversized body, or disallowed type drops that image silently;
// nothing aborts the export.
func loadImages(ctx context.Context, client *http.Client, refs []string) []Image {
	if len(refs) == 0 {
		return nil
	}

	results := make([]*Image, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			img, err := loadImage(ctx, client, ref)
			if err != nil {
				return
			}
			results[i] = img
		}(i, ref)
	}
	wg.Wait()

	images := make([]Image, 0, len(refs))
	for _, img := range results {
		if img != nil {
			images = append(images, *img)
		}
	}
	return images
}

// loadImage handles both reference shapes: a base64 data URI embedded by
// the mobile client, or a URL pointing at an uploaded attachment.
func loadImage(ctx context.Context, client *http.Client, ref string) (*Image, error) {
	if strings.HasPrefix(ref, "data:") {
		return decodeDataURI(ref)
	}
	return fetchImage(ctx, client, ref)
}

// fetchImage retrieves image bytes over HTTP, validates the MIME type and
// measures pixel dimensions from the decoded bitmap.
func fetchImage(ctx context.Context, client *http.Client, url string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, errors.New("image too large")
	}

	ext, ok := allowedImageTypes[sniffImageType(data)]
	if !ok {
		return nil, errors.New("disallowed image type")
	}

	img := &Image{Data: data, Extension: ext}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width = cfg.Width
		img.Height = cfg.Height
	}
	return img, nil
}

// decodeDataURI decodes a "data:image/png;base64,..." reference without any
// network access. Dimensions stay zero when the payload cannot be decoded
// as a bitmap; the image is still embedded.
func decodeDataURI(ref string) (*Image, error) {
	meta, payload, ok := strings.Cut(ref, ",")
	if !ok {
		return nil, errors.New("malformed data URI")
	}
	meta = strings.TrimPrefix(meta, "data:")
	mime, _, _ := strings.Cut(meta, ";")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data URI: %w", err)
	}

	// Trust the sniffed type over the declared one when they disagree.
	if sniffed := sniffImageType(data); sniffed != "application/octet-stream" {
		mime = sniffed
	}
	ext, ok := allowedImageTypes[mime]
	if !ok {
		return nil, errors.New("disallowed image type")
	}

	img := &Image{Data: data, Extension: ext}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width = cfg.Width
		img.Height = cfg.Height
	}
	return img, nil
}

func sniffImageType(data []byte) string {
	return http.DetectContentType(data)
}
