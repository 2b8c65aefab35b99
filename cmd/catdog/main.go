package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"catdog/internal/classify"
	"catdog/internal/config"
	"catdog/internal/labels"
	"catdog/internal/model"
)

var (
	// Global flags
	verbose    bool
	imagesDir  string
	modelPath  string
	metaPath   string
	classIndex string
	labelsDir  string
	format     string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "catdog",
	Short: "Classify images as cat or dog with a pretrained ImageNet model",
	Long: `catdog runs a pretrained ONNX image-classification model over a
directory of images, decodes the top-1 ImageNet class for each, and tags
it Cat, Dog, or unlabeled by membership in two static breed-name lists.

The result is printed as a table sorted by descending confidence.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := zapcore.ParseLevel(cfg.Output.LogLevel)
		if err != nil {
			return fmt.Errorf("bad log level %q: %w", cfg.Output.LogLevel, err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}

		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runClassify,
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Print the parsed cat and dog breed lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		for _, list := range []struct {
			title string
			file  string
		}{
			{"cat breeds", cfg.Data.CatBreeds},
			{"dog breeds", cfg.Data.DogBreeds},
		} {
			breeds, err := labels.ParseBreedFile(filepath.Join(cfg.Data.LabelsDir, list.file))
			if err != nil {
				return err
			}
			fmt.Printf("%s (%d):\n", list.title, len(breeds))
			for _, b := range breeds {
				fmt.Printf("  %s\n", b)
			}
		}
		return nil
	},
}

// loadConfig reads the viper config and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if imagesDir != "" {
		cfg.Data.ImagesDir = imagesDir
	}
	if modelPath != "" {
		cfg.Model.Path = modelPath
	}
	if metaPath != "" {
		cfg.Model.MetadataPath = metaPath
	}
	if classIndex != "" {
		cfg.Model.ClassIndex = classIndex
	}
	if labelsDir != "" {
		cfg.Data.LabelsDir = labelsDir
	}
	if format != "" {
		cfg.Output.Format = format
	}

	return cfg, nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("loading model",
		zap.String("model", cfg.Model.Path),
		zap.String("metadata", cfg.Model.MetadataPath))

	session, err := model.New(cfg.Model.Path, cfg.Model.MetadataPath)
	if err != nil {
		return fmt.Errorf("failed to initialize model session: %w", err)
	}
	defer session.Close()

	imageSize := cfg.Model.ImageSize
	if session.Metadata.ImageSize > 0 {
		imageSize = session.Metadata.ImageSize
	}
	logger.Info("model loaded",
		zap.Int64s("input_shape", session.Metadata.InputShape),
		zap.Int("image_size", imageSize))

	index, err := labels.LoadClassIndex(cfg.Model.ClassIndex)
	if err != nil {
		return err
	}

	catBreeds, err := labels.ParseBreedFile(filepath.Join(cfg.Data.LabelsDir, cfg.Data.CatBreeds))
	if err != nil {
		return err
	}
	dogBreeds, err := labels.ParseBreedFile(filepath.Join(cfg.Data.LabelsDir, cfg.Data.DogBreeds))
	if err != nil {
		return err
	}
	tagger := labels.NewTagger(catBreeds, dogBreeds)

	pipeline := classify.New(session, index, tagger, imageSize, logger)
	rows, err := pipeline.Run(cmd.Context(), cfg.Data.ImagesDir)
	if err != nil {
		return err
	}

	switch cfg.Output.Format {
	case "csv":
		out, err := classify.RenderCSV(rows)
		if err != nil {
			return err
		}
		fmt.Print(out)
	case "table":
		fmt.Println(classify.RenderTable(rows))
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}

	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&imagesDir, "images", "", "directory of images to classify")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "path to the ONNX model")
	rootCmd.PersistentFlags().StringVar(&metaPath, "metadata", "", "path to the model metadata JSON")
	rootCmd.PersistentFlags().StringVar(&classIndex, "class-index", "", "path to the ImageNet class index JSON")
	rootCmd.PersistentFlags().StringVar(&labelsDir, "labels-dir", "", "directory holding the breed list files")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: table or csv")

	rootCmd.AddCommand(labelsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
