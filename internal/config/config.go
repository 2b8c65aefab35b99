package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Model  ModelConfig
	Data   DataConfig
	Output OutputConfig
}

type ModelConfig struct {
	Path         string
	MetadataPath string
	ClassIndex   string
	ImageSize    int
}

type DataConfig struct {
	ImagesDir string
	LabelsDir string
	CatBreeds string
	DogBreeds string
}

type OutputConfig struct {
	Format   string
	LogLevel string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("MODEL_PATH", "models/resnet50.onnx")
	v.SetDefault("MODEL_METADATA", "models/model_metadata.json")
	v.SetDefault("MODEL_CLASS_INDEX", "models/imagenet_class_index.json")
	v.SetDefault("MODEL_IMAGE_SIZE", 224)
	v.SetDefault("DATA_IMAGES", "images")
	v.SetDefault("DATA_LABELS", "labels")
	v.SetDefault("DATA_CAT_BREEDS", "cat_breeds.txt")
	v.SetDefault("DATA_DOG_BREEDS", "dog_breeds.txt")
	v.SetDefault("OUTPUT_FORMAT", "table")
	v.SetDefault("OUTPUT_LOG_LEVEL", "info")

	// Env, e.g. CATDOG_MODEL_PATH
	v.SetEnvPrefix("CATDOG")
	v.AutomaticEnv()

	cfg := &Config{
		Model: ModelConfig{
			Path:         v.GetString("MODEL_PATH"),
			MetadataPath: v.GetString("MODEL_METADATA"),
			ClassIndex:   v.GetString("MODEL_CLASS_INDEX"),
			ImageSize:    v.GetInt("MODEL_IMAGE_SIZE"),
		},
		Data: DataConfig{
			ImagesDir: v.GetString("DATA_IMAGES"),
			LabelsDir: v.GetString("DATA_LABELS"),
			CatBreeds: v.GetString("DATA_CAT_BREEDS"),
			DogBreeds: v.GetString("DATA_DOG_BREEDS"),
		},
		Output: OutputConfig{
			Format:   v.GetString("OUTPUT_FORMAT"),
			LogLevel: v.GetString("OUTPUT_LOG_LEVEL"),
		},
	}

	return cfg, nil
}
