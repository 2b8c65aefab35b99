package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftmaxSumsToOne(t *testing.T) {
	probs := Softmax([]float32{1.0, 2.0, 3.0, 4.0})

	var sum float32
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, float32(0))
		assert.LessOrEqual(t, p, float32(1))
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-5)
}

func TestSoftmaxShiftInvariant(t *testing.T) {
	a := Softmax([]float32{1.0, 2.0, 3.0})
	b := Softmax([]float32{101.0, 102.0, 103.0})

	require.Len(t, b, len(a))
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-6)
	}
}

func TestSoftmaxLargeLogits(t *testing.T) {
	// Without max subtraction these would overflow to +Inf.
	probs := Softmax([]float32{1000.0, 999.0})

	assert.Greater(t, probs[0], probs[1])
	assert.InDelta(t, 1.0, float64(probs[0]+probs[1]), 1e-5)
}

func TestSoftmaxEmpty(t *testing.T) {
	assert.Nil(t, Softmax(nil))
}

func TestTop1(t *testing.T) {
	classes := []string{"tabby", "beagle", "goldfish"}

	pred, err := Top1([]float32{0.1, 0.7, 0.2}, classes)
	require.NoError(t, err)
	assert.Equal(t, "beagle", pred.Class)
	assert.Equal(t, float32(0.7), pred.Score)
}

func TestTop1Errors(t *testing.T) {
	_, err := Top1(nil, nil)
	assert.Error(t, err)

	_, err = Top1([]float32{0.5, 0.5}, []string{"only one"})
	assert.Error(t, err)
}
