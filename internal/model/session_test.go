package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictInputLengthCheck(t *testing.T) {
	// The length guard runs before any tensor is touched, so a bare
	// Session is enough to exercise it.
	s := &Session{inputLen: 4}

	_, err := s.Predict(make([]float32, 3))
	assert.ErrorContains(t, err, "expected 4 input values, got 3")

	_, err = s.Predict(nil)
	assert.ErrorContains(t, err, "expected 4 input values, got 0")
}
