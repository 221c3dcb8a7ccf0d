package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/tools"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolve_MissingFileUsesDefaults(t *testing.T) {
	r, err := Resolve(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1000, r.Width)
	assert.Equal(t, 600, r.Height)
	assert.Equal(t, DefaultBrushSizes, r.BrushSizes)
	assert.Equal(t, color.NRGBA{A: 255}, r.Color)
	assert.Equal(t, 25*time.Millisecond, r.SprayInterval)
	assert.Equal(t, tools.Line, r.Tool)
	assert.False(t, r.Trusted("example.com"))
}

func TestResolve_File(t *testing.T) {
	path := writeConfig(t, `
canvas:
  width: 640
  height: 480
brush:
  sizes: [2, 4, 8]
  color: "#ff8000"
spray:
  interval: 40ms
tool: Rainbow Line
trusted_origins:
  - images.example.com
`)
	r, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, 640, r.Width)
	assert.Equal(t, 480, r.Height)
	assert.Equal(t, []float64{2, 4, 8}, r.BrushSizes)
	assert.Equal(t, color.NRGBA{R: 255, G: 128, A: 255}, r.Color)
	assert.Equal(t, 40*time.Millisecond, r.SprayInterval)
	assert.Equal(t, tools.RainbowLine, r.Tool)
	assert.True(t, r.Trusted("Images.Example.com"))
}

func TestResolve_Invalid(t *testing.T) {
	tests := map[string]string{
		"brush.sizes":    "brush:\n  sizes: [1, 0]\n",
		"brush.color":    "brush:\n  color: orange\n",
		"spray.interval": "spray:\n  interval: soon\n",
		"tool":           "tool: Lasso\n",
		"canvas":         "canvas:\n  width: -3\n",
	}
	for field, body := range tests {
		t.Run(field, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestLoadOptional_BadYAML(t *testing.T) {
	_, err := LoadOptional(writeConfig(t, "canvas: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse")
}
