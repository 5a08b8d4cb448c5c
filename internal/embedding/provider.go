// Package embedding provides text embedding providers and the vector
// similarity primitive used by the scoring pipeline.
package embedding

import (
	"context"
	"fmt"
	"math"
)

// Provider generates vector embeddings from text. Implementations must be
// safe for concurrent use; the engine treats a provider as a stateless
// function constructed once at process start.
type Provider interface {
	// Embed returns a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one embedding per input text, in input order.
	// Batching is a throughput optimization: the vectors must be identical
	// to per-item Embed calls.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Error represents a failure talking to an embedding backend.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 and 1, where 1 means identical direction.
// Mismatched or zero-norm vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
