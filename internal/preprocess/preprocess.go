// Package preprocess turns image files into the flat CHW float32 tensors
// the classification model expects.
package preprocess

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
)

// ImageNet channel statistics, matching the normalization the pretrained
// model was trained with.
var (
	ImageNetMean = [3]float32{0.485, 0.456, 0.406}
	ImageNetStd  = [3]float32{0.229, 0.224, 0.225}
)

// ToTensor resizes img to size×size and returns its pixels as CHW float32
// planes, each channel scaled to [0,1] and then normalized with the given
// per-channel mean and standard deviation. The result has exactly
// 3*size*size values; the batch dimension is carried by the session shape.
func ToTensor(img image.Image, size int, mean, std [3]float32) []float32 {
	resized := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)

	bounds := resized.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	data := make([]float32, 3*width*height)
	plane := width * height

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := resized.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()

			idx := y*width + x
			data[idx] = (float32(r)/65535.0 - mean[0]) / std[0]
			data[plane+idx] = (float32(g)/65535.0 - mean[1]) / std[1]
			data[2*plane+idx] = (float32(b)/65535.0 - mean[2]) / std[2]
		}
	}

	return data
}

// File decodes the image at path (JPEG or PNG) and converts it with
// ToTensor.
func File(path string, size int, mean, std [3]float32) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return ToTensor(img, size, mean, std), nil
}
