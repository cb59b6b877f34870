package embedding

import (
	"context"
	"fmt"
)

// Unavailable stands in for a provider that could not be constructed. Every Embed call
// fails with the construction error, so the index degrades instead of the process exiting.
type Unavailable struct {
	dimension int
	cause     error
}

// NewUnavailable returns an embedder reporting dimension that always fails with cause.
func NewUnavailable(dimension int, cause error) *Unavailable {
	return &Unavailable{dimension: dimension, cause: cause}
}

// Embed always fails.
func (u *Unavailable) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, fmt.Errorf("%w: provider unavailable: %v", ErrEmbeddingFailed, u.cause)
}

func (u *Unavailable) Dimension() int {
	return u.dimension
}

func (u *Unavailable) Name() string {
	return "unavailable"
}
