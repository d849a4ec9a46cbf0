package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"golang.org/x/image/draw"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/Syahrulalhabib/nutrivision-backend/models"
)

// imageSize is the fixed square input resolution of the pretrained model.
const imageSize = 224

// channels is RGB.
const channels = 3

var (
	ortOnce    sync.Once
	ortInitErr error
)

// initRuntime initializes the shared onnxruntime environment once per
// process. The shared library path must be set before the first use.
func initRuntime(sharedLibPath string) error {
	ortOnce.Do(func() {
		if sharedLibPath != "" {
			ort.SetSharedLibraryPath(sharedLibPath)
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	return ortInitErr
}

// ClassifierService wraps the pretrained food CNN. The session is created
// once at startup; onnxruntime sessions support concurrent Run calls and all
// per-request tensors are local, so Classify is safe for concurrent use.
type ClassifierService struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	numClasses int
}

// NewClassifierService loads the ONNX model at modelPath and validates its
// shape: input must accept a 1x224x224x3 image batch and the output
// cardinality must equal numClasses (the catalog size). A cardinality
// mismatch is a configuration error between model and dataset, reported as
// ErrCatalogMismatch so it cannot be confused with a broken artifact.
func NewClassifierService(modelPath, ortLibPath string, numClasses int) (*ClassifierService, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("%w: model artifact %q: %v", ErrModelLoad, modelPath, err)
	}
	if err := initRuntime(ortLibPath); err != nil {
		return nil, fmt.Errorf("%w: onnxruntime init: %v", ErrModelLoad, err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read model metadata: %v", ErrModelLoad, err)
	}
	if len(inputs) != 1 || len(outputs) != 1 {
		return nil, fmt.Errorf("%w: expected 1 input and 1 output, got %d/%d", ErrModelLoad, len(inputs), len(outputs))
	}

	inDims := inputs[0].Dimensions
	if len(inDims) != 4 {
		return nil, fmt.Errorf("%w: input rank %d, want 4 (NHWC)", ErrModelLoad, len(inDims))
	}
	for i, want := range []int64{imageSize, imageSize, channels} {
		// dim 0 is the batch; dynamic dims (-1) are accepted.
		if got := inDims[i+1]; got > 0 && got != want {
			return nil, fmt.Errorf("%w: input dim %d is %d, want %d", ErrModelLoad, i+1, got, want)
		}
	}

	outDims := outputs[0].Dimensions
	if len(outDims) != 2 {
		return nil, fmt.Errorf("%w: output rank %d, want 2", ErrModelLoad, len(outDims))
	}
	if c := outDims[1]; c > 0 && int(c) != numClasses {
		return nil, fmt.Errorf("%w: model has %d classes, catalog has %d", ErrCatalogMismatch, c, numClasses)
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath,
		[]string{inputs[0].Name}, []string{outputs[0].Name}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create session: %v", ErrModelLoad, err)
	}

	return &ClassifierService{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
		numClasses: numClasses,
	}, nil
}

// Classify decodes an image of arbitrary size and format, preprocesses it,
// and returns the argmax class with its probability mass.
func (s *ClassifierService) Classify(imageBytes []byte) (models.ClassificationResult, error) {
	var zero models.ClassificationResult

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return zero, fmt.Errorf("%w: decode image: %v", ErrInference, err)
	}

	// Tensor and session failures are server-side faults, not bad input;
	// they stay outside the ErrInference taxonomy so callers report 500.
	input, err := ort.NewTensor(ort.NewShape(1, imageSize, imageSize, channels), preprocess(img))
	if err != nil {
		return zero, fmt.Errorf("input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(s.numClasses)))
	if err != nil {
		return zero, fmt.Errorf("output tensor: %w", err)
	}
	defer output.Destroy()

	if err := s.session.Run([]ort.Value{input}, []ort.Value{output}); err != nil {
		return zero, fmt.Errorf("run model: %w", err)
	}

	classIndex, confidence := argmax(output.GetData())
	return models.ClassificationResult{
		ClassIndex: classIndex,
		Confidence: float64(confidence),
	}, nil
}

// NumClasses returns the model's output cardinality.
func (s *ClassifierService) NumClasses() int { return s.numClasses }

// Close releases the onnxruntime session.
func (s *ClassifierService) Close() error {
	if s.session != nil {
		return s.session.Destroy()
	}
	return nil
}

// preprocess resizes to 224x224 with bilinear resampling and normalizes
// pixel intensities to [0,1], producing NHWC float32 data.
func preprocess(img image.Image) []float32 {
	dst := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	data := make([]float32, imageSize*imageSize*channels)
	i := 0
	for y := 0; y < imageSize; y++ {
		for x := 0; x < imageSize; x++ {
			off := dst.PixOffset(x, y)
			data[i] = float32(dst.Pix[off]) / 255
			data[i+1] = float32(dst.Pix[off+1]) / 255
			data[i+2] = float32(dst.Pix[off+2]) / 255
			i += channels
		}
	}
	return data
}

// argmax returns the index of the largest probability and its value.
func argmax(probs []float32) (int, float32) {
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best, probs[best]
}
