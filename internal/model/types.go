package model

// Metadata describes the tensor shapes of the exported ONNX model. It is
// read from a JSON file shipped next to the model weights.
type Metadata struct {
	InputShape  []int64 `json:"input_shape"`
	OutputShape []int64 `json:"output_shape"`
	ImageSize   int     `json:"image_size"`
}

// Prediction is the decoded top-1 result for a single image.
type Prediction struct {
	Class string  `json:"class"`
	Score float32 `json:"score"`
}
