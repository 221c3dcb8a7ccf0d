package export

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/paint"
)

func sample() *paint.Canvas {
	c := paint.New(16, 8)
	c.State.SetColor(color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	c.FillRect(2, 2, 4, 4)
	return c
}

func TestSave_PNGDecodesBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sample(), "drawing.png"))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	r, _, _, a := img.At(3, 3).RGBA()
	assert.Equal(t, uint32(200), r>>8)
	assert.Equal(t, uint32(255), a>>8)
}

func TestSave_Formats(t *testing.T) {
	for _, name := range []string{"a.jpg", "a.JPEG", "a.gif", "a.bmp", "a.tiff", "noext"} {
		var buf bytes.Buffer
		assert.NoError(t, Save(&buf, sample(), name), name)
		assert.NotZero(t, buf.Len(), name)
	}
}

func TestSave_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, sample(), "drawing.pdf"))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestSave_UnsupportedExtension(t *testing.T) {
	var buf bytes.Buffer
	err := Save(&buf, sample(), "drawing.xcf")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestSave_TaintedCanvas(t *testing.T) {
	c := sample()
	c.Taint("elsewhere.example")

	var buf bytes.Buffer
	err := Save(&buf, c, "drawing.png")

	var secErr *paint.SecurityError
	require.True(t, errors.As(err, &secErr))
	assert.Zero(t, buf.Len())

	_, err = DataURL(c)
	assert.ErrorIs(t, err, paint.ErrExportForbidden)
}

func TestDataURL(t *testing.T) {
	url, err := DataURL(sample())
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(url, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	require.NoError(t, err)

	img, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}
