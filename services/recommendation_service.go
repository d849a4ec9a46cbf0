package services

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/hupe1980/vecgo"

	"github.com/Syahrulalhabib/nutrivision-backend/models"
)

// featureDim is the macronutrient feature space: carbohydrates, protein, fat.
const featureDim = 3

// DefaultNeighbors is the default number of recommendations returned.
const DefaultNeighbors = 5

// RecommendationService answers nearest-neighbor queries over the catalog's
// macronutrient vectors. The index is built once from the catalog in class
// index order and never mutated, so Recommend is safe for concurrent use.
type RecommendationService struct {
	db      *vecgo.DB
	dir     string
	classes map[vecgo.ID]int
	catalog *CatalogService
	k       int
}

// NewRecommendationService indexes every catalog record. The index lives in
// a throwaway directory; call Close to release it.
func NewRecommendationService(catalog *CatalogService, k int) (*RecommendationService, error) {
	if k <= 0 {
		k = DefaultNeighbors
	}
	if catalog.Size() < k {
		return nil, fmt.Errorf("%w: have %d, need at least %d", ErrInsufficientData, catalog.Size(), k)
	}

	dir, err := os.MkdirTemp("", "nutrivision-index-")
	if err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}

	ctx := context.Background()
	db, err := vecgo.Open(ctx, vecgo.Local(dir), vecgo.Create(featureDim, vecgo.MetricL2))
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("open feature index: %w", err)
	}

	// The engine assigns its own IDs, so remember which one holds which
	// class index.
	classes := make(map[vecgo.ID]int, catalog.Size())
	for _, rec := range catalog.Records() {
		id, err := db.Insert(ctx, rec.Features().Values(), nil, nil)
		if err != nil {
			db.Close()
			os.RemoveAll(dir)
			return nil, fmt.Errorf("index record %d: %w", rec.Index, err)
		}
		classes[id] = rec.Index
	}

	return &RecommendationService{db: db, dir: dir, classes: classes, catalog: catalog, k: k}, nil
}

// Close releases the underlying index and its directory.
func (s *RecommendationService) Close() error {
	err := s.db.Close()
	if rmErr := os.RemoveAll(s.dir); err == nil {
		err = rmErr
	}
	return err
}

// Recommend returns the min(k, N) catalog entries nearest to the query by
// Euclidean distance, nearest first. Ties are broken by class index
// ascending, so the output is deterministic for a fixed catalog. A query
// equal to a catalog vector returns that record first with score 1.
func (s *RecommendationService) Recommend(ctx context.Context, query models.FeatureVector) ([]models.Recommendation, error) {
	// The catalog is small and fixed, so fetch all N distances and order
	// them ourselves; the engine's top-k does not define tie order.
	results, err := s.db.Search(ctx, query.Values(), s.catalog.Size(), vecgo.WithoutData())
	if err != nil {
		return nil, fmt.Errorf("feature search: %w", err)
	}

	type neighbor struct {
		classIndex int
		distance   float64
	}
	neighbors := make([]neighbor, 0, len(results))
	for _, r := range results {
		classIndex, ok := s.classes[r.ID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown index id %d", ErrCatalogMismatch, r.ID)
		}
		// The L2 metric scores squared distance; back to Euclidean
		// before 1/(1+d).
		neighbors = append(neighbors, neighbor{
			classIndex: classIndex,
			distance:   math.Sqrt(float64(r.Score)),
		})
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].distance != neighbors[j].distance {
			return neighbors[i].distance < neighbors[j].distance
		}
		return neighbors[i].classIndex < neighbors[j].classIndex
	})

	n := s.k
	if len(neighbors) < n {
		n = len(neighbors)
	}
	recs := make([]models.Recommendation, 0, n)
	for _, nb := range neighbors[:n] {
		rec, err := s.catalog.GetByIndex(nb.classIndex)
		if err != nil {
			return nil, err
		}
		recs = append(recs, models.Recommendation{
			Name:            rec.Name,
			Nutrition:       rec.Nutrition(),
			SimilarityScore: 1 / (1 + nb.distance),
		})
	}
	return recs, nil
}
