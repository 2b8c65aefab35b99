package preprocess

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestToTensorShape(t *testing.T) {
	img := uniformImage(640, 480, color.RGBA{R: 120, G: 80, B: 40, A: 255})

	data := ToTensor(img, 224, ImageNetMean, ImageNetStd)

	assert.Len(t, data, 3*224*224)
}

func TestToTensorNormalization(t *testing.T) {
	// Pure white resizes to pure white, so every channel plane holds the
	// analytically expected normalized value.
	img := uniformImage(32, 32, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	size := 8
	data := ToTensor(img, size, ImageNetMean, ImageNetStd)
	require.Len(t, data, 3*size*size)

	plane := size * size
	for c := 0; c < 3; c++ {
		want := (1.0 - ImageNetMean[c]) / ImageNetStd[c]
		for i := 0; i < plane; i++ {
			assert.InDelta(t, want, data[c*plane+i], 1e-3)
		}
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, uniformImage(50, 30, color.RGBA{R: 10, G: 20, B: 30, A: 255})))
	require.NoError(t, f.Close())

	data, err := File(path, 224, ImageNetMean, ImageNetStd)
	require.NoError(t, err)
	assert.Len(t, data, 3*224*224)
}

func TestFileErrors(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.jpg"), 224, ImageNetMean, ImageNetStd)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "not_an_image.png")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err = File(path, 224, ImageNetMean, ImageNetStd)
	assert.Error(t, err)
}
