package services

import "errors"

// Error kinds for the inference pipeline. Loading errors are fatal at
// startup; the rest are surfaced per request by the controllers.
var (
	// ErrDataLoad means the catalog source was malformed, empty, or had a
	// missing/invalid field.
	ErrDataLoad = errors.New("dataset load failed")

	// ErrModelLoad means the model artifact is missing, corrupt, or has an
	// incompatible input/output shape.
	ErrModelLoad = errors.New("model load failed")

	// ErrInference means the image could not be decoded or the model
	// rejected the preprocessed input.
	ErrInference = errors.New("inference failed")

	// ErrIndexOutOfRange means a catalog lookup with an index outside [0, N).
	ErrIndexOutOfRange = errors.New("catalog index out of range")

	// ErrCatalogMismatch means the classifier's output space does not align
	// with the catalog index space.
	ErrCatalogMismatch = errors.New("classifier output does not match catalog")

	// ErrInsufficientData means the catalog is too small to build the
	// recommendation index.
	ErrInsufficientData = errors.New("not enough catalog entries")

	// ErrFoodNotFound means a lookup by name had no match.
	ErrFoodNotFound = errors.New("food not found in catalog")
)
