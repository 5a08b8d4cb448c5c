package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// batchChunkSize is the maximum number of texts per batch request allowed by
// the Gemini API.
const batchChunkSize = 100

// maxConcurrentChunks bounds how many batch chunks are in flight at once.
const maxConcurrentChunks = 4

// GeminiProvider implements Provider on the Gemini embedding API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini embedding provider. The client is meant
// to be constructed once at process start and reused across requests.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Embed returns the embedding vector for a single text.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	em := p.client.EmbeddingModel(p.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &Error{Message: "embed content failed", Cause: err}
	}
	if resp.Embedding == nil {
		return nil, &Error{Message: "no embedding in response"}
	}
	return resp.Embedding.Values, nil
}

// EmbedBatch embeds all texts, preserving input order. Inputs are split into
// API-sized chunks that run concurrently; each chunk writes into its own
// region of the result slice.
func (p *GeminiProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChunks)

	for start := 0; start < len(texts); start += batchChunkSize {
		end := min(start+batchChunkSize, len(texts))
		g.Go(func() error {
			chunk, err := p.embedChunk(ctx, texts[start:end])
			if err != nil {
				return err
			}
			copy(vectors[start:end], chunk)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// embedChunk issues one batch request for up to batchChunkSize texts.
func (p *GeminiProvider) embedChunk(ctx context.Context, texts []string) ([][]float32, error) {
	em := p.client.EmbeddingModel(p.model)
	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, &Error{Message: "batch embed failed", Cause: err}
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, &Error{Message: fmt.Sprintf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))}
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil {
			return nil, &Error{Message: fmt.Sprintf("missing embedding at index %d", i)}
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}

// Close releases resources held by the underlying client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
