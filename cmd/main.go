package main

import (
	"context"
	"log"
	"strings"

	"github.com/Syahrulalhabib/nutrivision-backend/config"
	"github.com/Syahrulalhabib/nutrivision-backend/routes"
	"github.com/Syahrulalhabib/nutrivision-backend/services"
	"github.com/Syahrulalhabib/nutrivision-backend/utils"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// All initialization must succeed before the server accepts traffic.
	var artifacts *utils.ArtifactStore
	if strings.HasPrefix(cfg.ModelURI, "s3://") || strings.HasPrefix(cfg.DatasetURI, "s3://") {
		var err error
		artifacts, err = utils.NewArtifactStore(ctx, cfg.AWSRegion)
		if err != nil {
			log.Fatalf("artifact store: %v", err)
		}
	}

	catalog, err := loadCatalog(ctx, cfg, artifacts)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("catalog loaded: %d foods", catalog.Size())

	modelPath, cleanup, err := artifacts.Fetch(ctx, cfg.ModelURI)
	if err != nil {
		log.Fatalf("fetch model: %v", err)
	}
	classifier, err := services.NewClassifierService(modelPath, cfg.OrtLibPath, catalog.Size())
	cleanup()
	if err != nil {
		log.Fatalf("load classifier: %v", err)
	}
	defer classifier.Close()

	recommender, err := services.NewRecommendationService(catalog, cfg.Neighbors)
	if err != nil {
		log.Fatalf("build recommendation index: %v", err)
	}
	defer recommender.Close()

	pipeline := services.NewInferenceService(classifier, catalog, recommender)

	r := routes.SetupRouter(pipeline)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func loadCatalog(ctx context.Context, cfg config.Config, artifacts *utils.ArtifactStore) (*services.CatalogService, error) {
	if cfg.DatasetSource == "db" {
		db, err := config.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return services.NewCatalogServiceFromDB(db)
	}

	path, cleanup, err := artifacts.Fetch(ctx, cfg.DatasetURI)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return services.NewCatalogServiceFromFile(path)
}
