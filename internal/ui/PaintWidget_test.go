package ui

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/config"
	"LocalPaint/internal/gesture"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/tools"
)

var red = color.NRGBA{R: 255, A: 255}

func newTestWidget(t *testing.T) *PaintWidget {
	t.Helper()
	test.NewTempApp(t)
	cfg := &config.Resolved{
		Width:          10,
		Height:         10,
		BrushSizes:     []float64{3, 5},
		Color:          red,
		SprayInterval:  tools.DefaultSprayInterval,
		Tool:           tools.Line,
		TrustedOrigins: []string{"good.example"},
	}
	p := NewPaintWidget(cfg)
	p.cx.Origin = func() image.Point { return image.Point{} }
	return p
}

func uniform(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func press(x, y float32) *desktop.MouseEvent {
	ev := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
	ev.AbsolutePosition = fyne.NewPos(x, y)
	return ev
}

func drag(x, y float32) *fyne.DragEvent {
	ev := &fyne.DragEvent{}
	ev.AbsolutePosition = fyne.NewPos(x, y)
	return ev
}

func TestNewPaintWidget_UsesConfig(t *testing.T) {
	p := newTestWidget(t)

	w, h := p.Surface().Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
	assert.Equal(t, red, p.Surface().State.FillColor)
	assert.Equal(t, red, p.Surface().State.StrokeColor)
	assert.Equal(t, 3.0, p.Surface().State.LineWidth)
	assert.Equal(t, tools.Line, p.Tool())
}

func TestPaintWidget_LineGesture(t *testing.T) {
	p := newTestWidget(t)

	p.MouseDown(press(1, 5))
	assert.True(t, p.tracker.Active())
	p.Dragged(drag(8, 5))
	p.MouseUp(press(8, 5))
	assert.False(t, p.tracker.Active())

	assert.Equal(t, uint8(255), p.Surface().Image().NRGBAAt(4, 5).A)
	assert.Equal(t, uint8(0), p.Surface().Image().NRGBAAt(4, 0).A)
}

func TestPaintWidget_DragEndUsesLastPosition(t *testing.T) {
	p := newTestWidget(t)
	var ended []image.Point
	p.registry.Register(tools.Line, func(ev gesture.Event, cx *tools.Context, _ gesture.EndFunc) {
		cx.Tracker.Track(nil, func(ev gesture.Event) {
			ended = append(ended, cx.Pos(ev))
		})
	})

	p.MouseDown(press(1, 1))
	p.Dragged(drag(6, 7))
	p.DragEnd()
	p.MouseUp(press(6, 7))

	assert.Equal(t, []image.Point{{X: 6, Y: 7}}, ended)
}

func TestPaintWidget_SecondaryButtonDoesNothing(t *testing.T) {
	p := newTestWidget(t)
	ev := press(5, 5)
	ev.Button = desktop.MouseButtonSecondary

	p.MouseDown(ev)
	assert.False(t, p.tracker.Active())
}

func TestPaintWidget_CancelGesture(t *testing.T) {
	p := newTestWidget(t)
	p.SetTool(tools.Rectangle)

	p.MouseDown(press(2, 2))
	p.Dragged(drag(6, 6))
	p.CancelGesture()

	assert.False(t, p.tracker.Active())
	assert.Equal(t, uint8(255), p.Surface().Image().NRGBAAt(3, 3).A)
}

func TestLoadImage_ResizesAndKeepsState(t *testing.T) {
	p := newTestWidget(t)
	p.SetStroke(5)

	p.LoadImage(uniform(20, 30, color.NRGBA{B: 255, A: 255}), "")

	w, h := p.Surface().Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 30, h)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, p.Surface().Image().NRGBAAt(19, 29))
	assert.Equal(t, red, p.Surface().State.FillColor)
	assert.Equal(t, red, p.Surface().State.StrokeColor)
	assert.Equal(t, 5.0, p.Surface().State.LineWidth)
	assert.False(t, p.Surface().Tainted())
	assert.Equal(t, "Loaded 20x30 image", p.StatusBar().Text)
}

func TestLoadImage_Origins(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		tainted bool
	}{
		{name: "local", origin: "", tainted: false},
		{name: "trusted", origin: "good.example", tainted: false},
		{name: "trusted any case", origin: "GOOD.example", tainted: false},
		{name: "foreign", origin: "evil.example", tainted: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestWidget(t)
			p.LoadImage(uniform(4, 4, color.White), tt.origin)
			assert.Equal(t, tt.tainted, p.Surface().Tainted())
		})
	}
}

func TestLoadReader_RejectsGarbage(t *testing.T) {
	p := newTestWidget(t)
	err := p.LoadReader(bytes.NewReader([]byte("not an image")), "junk.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "junk.png")

	w, h := p.Surface().Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}

func TestSaveTo(t *testing.T) {
	p := newTestWidget(t)
	p.Surface().FillRect(0, 0, 10, 10)

	var buf bytes.Buffer
	require.NoError(t, p.SaveTo(&buf, "out.png"))
	assert.NotZero(t, buf.Len())

	p.LoadImage(uniform(4, 4, color.White), "evil.example")
	buf.Reset()
	err := p.SaveTo(&buf, "out.png")
	require.Error(t, err)
	msg, forbidden := explainSaveError(err)
	assert.True(t, forbidden)
	assert.Contains(t, msg, "Can't save: ")
	assert.Zero(t, buf.Len())
}

func TestExplainSaveError(t *testing.T) {
	msg, forbidden := explainSaveError(&paint.SecurityError{Op: "export", Origin: "evil.example"})
	assert.True(t, forbidden)
	assert.Contains(t, msg, "Can't save: ")

	msg, forbidden = explainSaveError(errors.New("disk full"))
	assert.False(t, forbidden)
	assert.Empty(t, msg)
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "5 pixels", sizeLabel(5))
	assert.Equal(t, "100 pixels", sizeLabel(100))

	size, ok := parseSizeLabel("25 pixels")
	assert.True(t, ok)
	assert.Equal(t, 25.0, size)

	_, ok = parseSizeLabel("pixels")
	assert.False(t, ok)
	_, ok = parseSizeLabel("0 pixels")
	assert.False(t, ok)
}
