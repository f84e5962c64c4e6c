package vector

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensionMismatch indicates two vectors of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidDimensions indicates a vector of unexpected length.
	ErrInvalidDimensions = errors.New("vector: invalid dimensions")
)

// Truncate returns v limited to at most dim elements. When v is already
// short enough it is returned as is; no copy is made either way.
func Truncate(v []float32, dim int) []float32 {
	if dim < 0 {
		dim = 0
	}
	if len(v) <= dim {
		return v
	}
	return v[:dim]
}

// Normalize scales v in place to unit L2 length. A zero vector is left
// unchanged since it has no direction.
func Normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Vectors of different lengths are an error; a zero vector yields 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// ValidateDimensions checks that v has exactly want elements.
func ValidateDimensions(v []float32, want int) error {
	if len(v) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidDimensions, len(v), want)
	}
	return nil
}
