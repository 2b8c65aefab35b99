package model

import (
	"encoding/json"
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"
)

// Session wraps an ONNX Runtime inference session with pre-allocated
// input and output tensors sized from the model metadata. It is not safe
// for concurrent use; the pipeline runs one image at a time.
type Session struct {
	session      *ort.AdvancedSession
	Metadata     Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	inputLen     int
}

// LoadMetadata reads and parses the model metadata JSON file.
func LoadMetadata(path string) (Metadata, error) {
	var metadata Metadata

	raw, err := os.ReadFile(path)
	if err != nil {
		return metadata, fmt.Errorf("failed to read metadata: %w", err)
	}
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return metadata, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return metadata, nil
}

// New initializes the ONNX Runtime environment and creates a session for
// the model at modelPath, with tensor shapes taken from metadataPath.
func New(modelPath, metadataPath string) (*Session, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, err
	}

	inputShape := ort.NewShape(metadata.InputShape...)
	outputShape := ort.NewShape(metadata.OutputShape...)

	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	inputLen := 1
	for _, dim := range metadata.InputShape {
		inputLen *= int(dim)
	}

	return &Session{
		session:      session,
		Metadata:     metadata,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		inputLen:     inputLen,
	}, nil
}

// Predict runs one inference over the given input tensor data and returns
// a copy of the raw model output. The input length must match the product
// of the metadata input shape.
func (s *Session) Predict(input []float32) ([]float32, error) {
	if len(input) != s.inputLen {
		return nil, fmt.Errorf("expected %d input values, got %d", s.inputLen, len(input))
	}

	copy(s.inputTensor.GetData(), input)

	if err := s.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	// Copy out so the caller's slice survives the next Run.
	raw := s.outputTensor.GetData()
	out := make([]float32, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *Session) Close() {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	if s.session != nil {
		s.session.Destroy()
	}
	ort.DestroyEnvironment()
}
