package model

import (
	"fmt"
	"math"
)

// Softmax converts raw logits to probabilities. The maximum logit is
// subtracted first to keep the exponentials in range.
func Softmax(logits []float32) []float32 {
	if len(logits) == 0 {
		return nil
	}

	maxVal := logits[0]
	for _, v := range logits[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	probs := make([]float32, len(logits))
	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - maxVal))
		probs[i] = float32(e)
		sum += e
	}
	for i := range probs {
		probs[i] = float32(float64(probs[i]) / sum)
	}
	return probs
}

// Top1 returns the highest-scoring class. classes must have one entry per
// score.
func Top1(scores []float32, classes []string) (Prediction, error) {
	if len(scores) == 0 {
		return Prediction{}, fmt.Errorf("no scores to decode")
	}
	if len(scores) != len(classes) {
		return Prediction{}, fmt.Errorf("got %d scores for %d classes", len(scores), len(classes))
	}

	maxIdx := 0
	maxVal := scores[0]
	for i, val := range scores {
		if val > maxVal {
			maxVal = val
			maxIdx = i
		}
	}

	return Prediction{Class: classes[maxIdx], Score: maxVal}, nil
}
