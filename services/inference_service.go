package services

import (
	"context"
	"fmt"

	"github.com/Syahrulalhabib/nutrivision-backend/models"
)

// ImageClassifier is the classifier surface the pipeline depends on.
// ClassifierService implements it.
type ImageClassifier interface {
	Classify(imageBytes []byte) (models.ClassificationResult, error)
}

// InferenceService runs the staged pipeline: classify the image, look the
// class up in the catalog, build the macronutrient feature vector and query
// the recommendation index. Every stage failure is terminal for the request;
// nothing shared is mutated, so no partial state can leak.
type InferenceService struct {
	classifier  ImageClassifier
	catalog     *CatalogService
	recommender *RecommendationService
}

func NewInferenceService(classifier ImageClassifier, catalog *CatalogService, recommender *RecommendationService) *InferenceService {
	return &InferenceService{
		classifier:  classifier,
		catalog:     catalog,
		recommender: recommender,
	}
}

// InferFromImage classifies the image and returns the matched food with its
// nutrition and nearest-neighbor recommendations. The classifier confidence
// is passed through unchanged.
func (s *InferenceService) InferFromImage(ctx context.Context, imageBytes []byte) (*models.InferenceResult, error) {
	result, err := s.classifier.Classify(imageBytes)
	if err != nil {
		return nil, err
	}

	// A class index outside the catalog means classifier and dataset are
	// misconfigured relative to each other; never truncate it silently.
	if result.ClassIndex < 0 || result.ClassIndex >= s.catalog.Size() {
		return nil, fmt.Errorf("%w: class index %d, catalog size %d",
			ErrCatalogMismatch, result.ClassIndex, s.catalog.Size())
	}

	record, err := s.catalog.GetByIndex(result.ClassIndex)
	if err != nil {
		return nil, err
	}

	recs, err := s.recommender.Recommend(ctx, record.Features())
	if err != nil {
		return nil, err
	}

	return &models.InferenceResult{
		FoodName:        record.Name,
		Confidence:      result.Confidence,
		Nutrition:       record.Nutrition(),
		Recommendations: recs,
	}, nil
}

// InferFromFeatures recommends foods for caller-supplied nutrition values.
func (s *InferenceService) InferFromFeatures(ctx context.Context, features models.FeatureVector) ([]models.Recommendation, error) {
	return s.recommender.Recommend(ctx, features)
}

// InferFromName looks a food up by name and recommends similar entries.
func (s *InferenceService) InferFromName(ctx context.Context, name string) (models.FoodRecord, []models.Recommendation, error) {
	record, ok := s.catalog.FindByName(name)
	if !ok {
		return models.FoodRecord{}, nil, fmt.Errorf("%w: %q", ErrFoodNotFound, name)
	}
	recs, err := s.recommender.Recommend(ctx, record.Features())
	if err != nil {
		return models.FoodRecord{}, nil, err
	}
	return record, recs, nil
}
