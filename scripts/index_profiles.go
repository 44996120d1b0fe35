package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/TiGG-TV/Realtime/internal/catalog"
	"github.com/TiGG-TV/Realtime/internal/config"
	"github.com/TiGG-TV/Realtime/internal/models"
	"github.com/TiGG-TV/Realtime/internal/repositories"
	"github.com/TiGG-TV/Realtime/internal/services"
)

func main() {
	log.Println("🚀 Starting profile indexing...")

	cfg := config.Load()

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbedModel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	ctx := context.Background()
	if err := qdrantService.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	profiles := catalog.All()

	var profileRepo repositories.ProfileRepository
	if db, err := config.InitDatabase(cfg); err != nil {
		log.Printf("⚠️  Database unavailable, indexing built-in profiles only: %v", err)
	} else {
		profileRepo = repositories.NewProfileRepository(db)
		custom, err := profileRepo.FindAll()
		if err != nil {
			log.Fatalf("❌ Failed to load custom profiles: %v", err)
		}
		profiles = append(profiles, custom...)
	}

	search := services.NewProfileSearchService(geminiService, qdrantService, services.NewProfileService(profileRepo))

	successCount := 0
	failCount := 0

	for _, p := range profiles {
		if err := search.Index(ctx, p); err != nil {
			log.Printf("   ❌ %s (%s): %v", p.Name, p.ID, err)
			failCount++
			continue
		}
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Indexing Summary:")
	log.Printf("   ✅ Indexed: %d profiles (%d built-in)", successCount, countBuiltin(profiles))
	log.Printf("   ❌ Failed: %d profiles", failCount)
	for _, category := range catalog.Categories() {
		n := lo.CountBy(profiles, func(p models.Profile) bool { return p.Category == category })
		log.Printf("   • %s: %d", category, n)
	}
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}

func countBuiltin(profiles []models.Profile) int {
	return lo.CountBy(profiles, func(p models.Profile) bool { return p.IsBuiltin() })
}
