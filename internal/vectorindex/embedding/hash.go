package embedding

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const defaultHashDimension = 384

// Hash is a deterministic feature-hashing embedder. Each lowercase word token and each
// character trigram of a token votes into one signed bucket; the result is L2-normalized.
// Texts sharing vocabulary land close together, which is enough for offline development
// and tests. It carries no semantics beyond lexical overlap.
type Hash struct {
	dimension int
}

// NewHash creates a hash embedder. Non-positive dimensions fall back to 384.
func NewHash(dimension int) *Hash {
	if dimension <= 0 {
		dimension = defaultHashDimension
	}
	return &Hash{dimension: dimension}
}

// Embed embeds every text independently.
func (h *Hash) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: texts cannot be empty", ErrEmptyInput)
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = h.embedOne(text)
	}
	return vectors, nil
}

func (h *Hash) embedOne(text string) []float32 {
	vec := make([]float32, h.dimension)

	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		h.add(vec, "w:"+tok, 2)
		padded := []rune("^" + tok + "$")
		for i := 0; i+3 <= len(padded); i++ {
			h.add(vec, "c:"+string(padded[i:i+3]), 1)
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}

func (h *Hash) add(vec []float32, feature string, weight float32) {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(feature))
	sum := hasher.Sum64()
	bucket := int(sum % uint64(h.dimension))
	if sum&(1<<63) != 0 {
		weight = -weight
	}
	vec[bucket] += weight
}

// Dimension returns the vector dimension.
func (h *Hash) Dimension() int {
	return h.dimension
}

// Name returns the provider name.
func (h *Hash) Name() string {
	return "feature-hash"
}
