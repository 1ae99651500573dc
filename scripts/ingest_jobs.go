package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-optimizer/internal/config"
	"resume-optimizer/internal/models"
	"resume-optimizer/internal/repositories"
	"resume-optimizer/internal/services"
)

// Seeds the job description corpus from a directory of PDF/DOCX/TXT files so
// the /matches endpoint has something to rank against.
//
// Usage: go run scripts/ingest_jobs.go <directory>
func main() {
	log.Println("🚀 Starting job description ingestion...")

	dir := "./reference_jobs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	docRepo := repositories.NewDocumentRepository(db)

	// Initialize services
	embedder, err := services.NewGeminiEmbedder(cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding model: %v", err)
	}

	jobIndex, err := services.NewJobIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := jobIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	parser := services.NewDocumentParserService()

	ctx := context.Background()

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("❌ Failed to read directory %s: %v", dir, err)
	}

	ingested := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".pdf" && ext != ".docx" && ext != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		log.Printf("📄 Ingesting %s...", entry.Name())

		text, err := parser.ExtractText(path)
		if err != nil {
			log.Printf("⚠️  Failed to parse %s: %v", entry.Name(), err)
			continue
		}

		if text == "" {
			log.Printf("⚠️  Skipping %s: no text content", entry.Name())
			continue
		}

		doc := models.Document{
			ID:               uuid.New(),
			Filename:         entry.Name(),
			OriginalFileName: entry.Name(),
			DocType:          models.DocTypeJobDescription,
			FilePath:         path,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := docRepo.Create(&doc); err != nil {
			log.Printf("⚠️  Failed to save document record for %s: %v", entry.Name(), err)
			continue
		}

		embeddings, err := embedder.EmbedTexts(ctx, []string{text})
		if err != nil {
			log.Printf("⚠️  Failed to embed %s: %v", entry.Name(), err)
			continue
		}

		if err := jobIndex.UpsertJob(ctx, doc.ID.String(), doc.OriginalFileName, text, embeddings[0]); err != nil {
			log.Printf("⚠️  Failed to index %s: %v", entry.Name(), err)
			continue
		}

		ingested++
	}

	log.Printf("✅ Ingestion completed: %d job descriptions indexed", ingested)
}
