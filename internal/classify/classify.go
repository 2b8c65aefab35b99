// Package classify runs the image classification pipeline: enumerate
// files, preprocess, predict, decode, tag, sort.
package classify

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"catdog/internal/labels"
	"catdog/internal/model"
	"catdog/internal/preprocess"
)

// Predictor runs one inference over a flat input tensor.
type Predictor interface {
	Predict(input []float32) ([]float32, error)
}

// Row is one line of the final report.
type Row struct {
	Class  string
	Score  float32
	CatDog string
	File   string
}

// Pipeline ties the model session to the static label data and the
// preprocessing parameters.
type Pipeline struct {
	predictor Predictor
	index     *labels.ClassIndex
	tagger    *labels.Tagger
	size      int
	mean, std [3]float32
	log       *zap.Logger
}

func New(predictor Predictor, index *labels.ClassIndex, tagger *labels.Tagger, imageSize int, log *zap.Logger) *Pipeline {
	return &Pipeline{
		predictor: predictor,
		index:     index,
		tagger:    tagger,
		size:      imageSize,
		mean:      preprocess.ImageNetMean,
		std:       preprocess.ImageNetStd,
		log:       log,
	}
}

// ListImages walks dir and returns the JPEG and PNG files under it, in
// lexical walk order. Paths are relative to dir.
func ListImages(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".jpg", ".jpeg", ".png":
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list images in %s: %w", dir, err)
	}
	return files, nil
}

// Run classifies every image under imagesDir and returns the report rows
// sorted by descending score. The first failing file aborts the run.
func (p *Pipeline) Run(ctx context.Context, imagesDir string) ([]Row, error) {
	files, err := ListImages(imagesDir)
	if err != nil {
		return nil, err
	}
	p.log.Info("classifying images", zap.String("dir", imagesDir), zap.Int("count", len(files)))

	rows := make([]Row, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := p.classifyOne(filepath.Join(imagesDir, file), file)
		if err != nil {
			return nil, err
		}
		p.log.Debug("classified image",
			zap.String("file", row.File),
			zap.String("class", row.Class),
			zap.Float32("score", row.Score),
			zap.String("catdog", row.CatDog))
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	return rows, nil
}

func (p *Pipeline) classifyOne(path, name string) (Row, error) {
	input, err := preprocess.File(path, p.size, p.mean, p.std)
	if err != nil {
		return Row{}, err
	}

	logits, err := p.predictor.Predict(input)
	if err != nil {
		return Row{}, fmt.Errorf("prediction failed for %s: %w", name, err)
	}

	probs := model.Softmax(logits)
	pred, err := model.Top1(probs, p.index.Descriptions())
	if err != nil {
		return Row{}, fmt.Errorf("failed to decode prediction for %s: %w", name, err)
	}

	return Row{
		Class:  pred.Class,
		Score:  pred.Score,
		CatDog: p.tagger.Tag(pred.Class),
		File:   name,
	}, nil
}
