package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// JobIndexService keeps an embedding per stored job description so a resume
// can be ranked against the whole corpus.
type JobIndexService interface {
	InitCollection() error
	UpsertJob(ctx context.Context, docID string, filename string, text string, embedding []float32) error
	SearchJobs(ctx context.Context, queryEmbedding []float32, limit int) ([]JobSearchResult, error)
	DeleteJob(ctx context.Context, docID string) error
}

type JobSearchResult struct {
	DocID    string
	Filename string
	Score    float32
}

type jobIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewJobIndexService(urlStr, apiKey, collectionName string) (JobIndexService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &jobIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements JobIndexService.
func (q *jobIndexService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertJob implements JobIndexService. The point id is the document id, so
// reprocessing a job description replaces its vector instead of duplicating it.
func (q *jobIndexService) UpsertJob(ctx context.Context, docID string, filename string, text string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(docID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"doc_id":   docID,
			"filename": filename,
			"text":     text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchJobs implements JobIndexService.
func (q *jobIndexService) SearchJobs(ctx context.Context, queryEmbedding []float32, limit int) ([]JobSearchResult, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]JobSearchResult, 0, len(searchResult))
	for _, point := range searchResult {
		result := JobSearchResult{Score: point.Score}

		payload := point.Payload
		if v, ok := payload["doc_id"]; ok {
			result.DocID = v.GetStringValue()
		}
		if v, ok := payload["filename"]; ok {
			result.Filename = v.GetStringValue()
		}

		results = append(results, result)
	}

	return results, nil
}

// DeleteJob implements JobIndexService.
func (q *jobIndexService) DeleteJob(ctx context.Context, docID string) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points:         qdrant.NewPointsSelector(qdrant.NewID(docID)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete point: %w", err)
	}

	return nil
}
