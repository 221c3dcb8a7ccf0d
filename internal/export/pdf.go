package export

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes img as a single page PDF whose page is the size of the
// image, one point per pixel.
func WritePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	cfg := &gofpdf.InitType{OrientationStr: "P", UnitStr: "pt", Size: gofpdf.SizeType{Wd: wd, Ht: ht}}
	if wd > ht {
		cfg.OrientationStr = "L"
		cfg.Size = gofpdf.SizeType{Wd: ht, Ht: wd}
	}
	p := gofpdf.NewCustom(cfg)
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return fmt.Errorf("unable to encode page image: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("surface", opts, &buf)
	p.ImageOptions("surface", 0, 0, wd, ht, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("unable to write pdf: %w", err)
	}
	return nil
}
