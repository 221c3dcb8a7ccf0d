package paint

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	regularOnce sync.Once
	regular     *opentype.Font
	regularErr  error

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// face returns the Go Regular face at size pixels, cached per size.
func face(size float64) (font.Face, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	if regularErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", regularErr)
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(regular, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpx face: %w", size, err)
	}
	faces[size] = f
	return f, nil
}

// FillText draws s with its baseline starting at (x, y) in the fill
// colour, sized by State.FontSize.
func (c *Canvas) FillText(s string, x, y float64) error {
	if s == "" {
		return nil
	}
	f, err := face(c.State.FontSize())
	if err != nil {
		return err
	}
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	bounds, _ := font.BoundString(f, s)
	dirty := image.Rect(
		int(math.Floor(float64(dot.X+bounds.Min.X)/64))-1,
		int(math.Floor(float64(dot.Y+bounds.Min.Y)/64))-1,
		int(math.Ceil(float64(dot.X+bounds.Max.X)/64))+1,
		int(math.Ceil(float64(dot.Y+bounds.Max.Y)/64))+1,
	).Intersect(c.img.Bounds())
	if dirty.Empty() {
		return nil
	}
	d := &font.Drawer{
		Dst:  c.layer,
		Src:  image.NewUniform(c.State.withAlpha(c.State.FillColor)),
		Face: f,
		Dot:  dot,
	}
	d.DrawString(s)
	c.commit(dirty)
	return nil
}
