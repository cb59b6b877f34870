package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailable_AlwaysFails(t *testing.T) {
	cause := errors.New("fastembed requires cgo")
	u := NewUnavailable(384, cause)

	vecs, err := u.Embed(context.Background(), []string{"Chat Bot: NLP chatbot"})

	assert.Nil(t, vecs)
	assert.ErrorIs(t, err, ErrEmbeddingFailed)
	assert.ErrorContains(t, err, "fastembed requires cgo")
	assert.Equal(t, 384, u.Dimension())
	assert.Equal(t, "unavailable", u.Name())
}
