package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "models/resnet50.onnx", cfg.Model.Path)
	assert.Equal(t, 224, cfg.Model.ImageSize)
	assert.Equal(t, "images", cfg.Data.ImagesDir)
	assert.Equal(t, "labels", cfg.Data.LabelsDir)
	assert.Equal(t, "cat_breeds.txt", cfg.Data.CatBreeds)
	assert.Equal(t, "dog_breeds.txt", cfg.Data.DogBreeds)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Output.LogLevel)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CATDOG_MODEL_PATH", "/opt/models/custom.onnx")
	t.Setenv("CATDOG_OUTPUT_FORMAT", "csv")
	t.Setenv("CATDOG_MODEL_IMAGE_SIZE", "299")
	t.Setenv("CATDOG_OUTPUT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/opt/models/custom.onnx", cfg.Model.Path)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, 299, cfg.Model.ImageSize)
	assert.Equal(t, "debug", cfg.Output.LogLevel)
}
