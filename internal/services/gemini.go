package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"google.golang.org/genai"
)

// maxEmbedChars truncates overlong inputs before embedding (the model caps
// input tokens).
const maxEmbedChars = 40000

type geminiEmbedder struct {
	client     *genai.Client
	embedModel string
}

// NewGeminiEmbedder creates the process-wide embedding client. It is built
// once at startup and reused read-only for the process lifetime; a failure
// here is fatal.
func NewGeminiEmbedder(apiKey, embedModel string) (Embedder, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelLoadFailure, err)
	}

	return &geminiEmbedder{
		client:     client,
		embedModel: embedModel,
	}, nil
}

// EmbedTexts implements Embedder. All texts go out as a single batch call.
func (g *geminiEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.Text(truncateForEmbed(text))...)
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings in result, got %d", len(texts), len(result.Embeddings))
	}

	embeddings := make([][]float32, len(texts))
	for i, embedding := range result.Embeddings {
		embeddings[i] = embedding.Values
	}

	return embeddings, nil
}

// truncateForEmbed cuts overlong text at maxEmbedChars, backing up so the
// cut never lands inside a multi-byte UTF-8 sequence.
func truncateForEmbed(text string) string {
	if len(text) <= maxEmbedChars {
		return text
	}

	cut := maxEmbedChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
