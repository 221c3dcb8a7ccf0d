// Package net loads images referenced by URL for the Open URL control.
package net

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"LocalPaint/internal/export"
)

// maxImageBytes caps how much of a response body is read.
const maxImageBytes = 64 << 20

// ErrNotImage is returned when the fetched content does not sniff as an image.
var ErrNotImage = errors.New("the fetched content is not a valid image type")

// ErrTooLarge is returned when a response body exceeds the fetcher's limit.
var ErrTooLarge = errors.New("image too large")

// Fetcher downloads and decodes images.
type Fetcher struct {
	Client *http.Client
	// MaxBytes caps the response body; zero means 64 MiB.
	MaxBytes int64
}

// NewFetcher returns a fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{Client: &http.Client{Timeout: 30 * time.Second}}
}

// Image is a decoded image together with the origin it was loaded from.
// Origin is empty for content that carries no foreign origin (data URLs).
type Image struct {
	image.Image
	Origin string
}

// Fetch resolves rawURL to an image. http and https URLs are downloaded;
// data URLs are decoded in place.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	rawURL = strings.TrimSpace(rawURL)
	if strings.HasPrefix(rawURL, "data:") {
		img, err := DecodeDataURL(rawURL)
		if err != nil {
			return nil, err
		}
		return &Image{Image: img}, nil
	}
	if !IsValidURL(rawURL) {
		return nil, fmt.Errorf("not a valid URL: %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build request for %s: %w", rawURL, err)
	}
	res, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to download image from %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("unable to download image from %s: status %s", rawURL, res.Status)
	}

	limit := f.maxBytes()
	data, err := io.ReadAll(io.LimitReader(res.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%s: %w: over %d bytes", rawURL, ErrTooLarge, limit)
	}
	img, err := decodeSniffed(data)
	if err != nil {
		return nil, err
	}
	return &Image{Image: img, Origin: Origin(rawURL)}, nil
}

func (f *Fetcher) maxBytes() int64 {
	if f.MaxBytes > 0 {
		return f.MaxBytes
	}
	return maxImageBytes
}

// decodeSniffed checks the MIME type of data before decoding it. Only the
// first 512 bytes are used to sniff the content type.
func decodeSniffed(data []byte) (image.Image, error) {
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, ErrNotImage
	}
	return export.Decode(bytes.NewReader(data))
}

// DecodeDataURL decodes a base64 "data:image/...;base64," URL.
func DecodeDataURL(raw string) (image.Image, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URL")
	}
	if !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("data URL is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("unable to decode data URL: %w", err)
	}
	return decodeSniffed(data)
}

// IsValidURL tests a string to determine if it is a well-structured http
// or https url.
func IsValidURL(uri string) bool {
	u, err := url.ParseRequestURI(uri)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Origin returns the lower-cased host of rawURL, the key used to decide
// whether its content may be exported again.
func Origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
