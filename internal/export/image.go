// Package export turns the drawing surface into files and back.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"LocalPaint/internal/paint"
)

// Decode reads an image in any format imaging understands, applying the
// EXIF orientation.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}
	return img, nil
}

// Encode writes img in the format named by the extension of name. PNG is
// used when name has no extension; ".pdf" produces a one page PDF.
func Encode(w io.Writer, img image.Image, name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case "":
		return imaging.Encode(w, img, imaging.PNG)
	case ".pdf":
		return WritePDF(w, img)
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("cannot save %q: %w", name, err)
	}
	if err := imaging.Encode(w, img, format); err != nil {
		return fmt.Errorf("unable to encode %s: %w", format, err)
	}
	return nil
}

// Save snapshots the canvas and encodes it by name. A tainted canvas
// fails with *paint.SecurityError and nothing is written.
func Save(w io.Writer, c *paint.Canvas, name string) error {
	img, err := c.Snapshot()
	if err != nil {
		return err
	}
	return Encode(w, img, name)
}

// DataURL returns the canvas as an embeddable "data:image/png;base64,"
// URL.
func DataURL(c *paint.Canvas) (string, error) {
	img, err := c.Snapshot()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("unable to encode png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
