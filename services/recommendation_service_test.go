package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Syahrulalhabib/nutrivision-backend/models"
)

func testCatalog(t *testing.T, dataset string) *CatalogService {
	t.Helper()
	catalog, err := NewCatalogService(strings.NewReader(dataset))
	require.NoError(t, err)
	return catalog
}

func testRecommender(t *testing.T, catalog *CatalogService, k int) *RecommendationService {
	t.Helper()
	svc, err := NewRecommendationService(catalog, k)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestRecommendationService(t *testing.T) {
	ctx := context.Background()

	// Scenario from the nutrition dataset contract: A and B differ by 2g
	// of carbohydrates, C is far away.
	abcDataset := `[
		{ "name": "A", "calories": 100, "carbohydrates_g": 10, "protein_g": 5, "fat_g": 2 },
		{ "name": "B", "calories": 110, "carbohydrates_g": 12, "protein_g": 5, "fat_g": 2 },
		{ "name": "C", "calories": 400, "carbohydrates_g": 50, "protein_g": 1, "fat_g": 20 }
	]`

	t.Run("NearestFirstWithExactMatch", func(t *testing.T) {
		catalog := testCatalog(t, abcDataset)
		svc := testRecommender(t, catalog, 2)

		recs, err := svc.Recommend(ctx, models.FeatureVector{Carbohydrates: 10, Protein: 5, Fat: 2})
		require.NoError(t, err)
		require.Len(t, recs, 2)

		assert.Equal(t, "A", recs[0].Name)
		assert.InDelta(t, 1.0, recs[0].SimilarityScore, 1e-9)
		assert.Equal(t, "B", recs[1].Name)
		assert.InDelta(t, 1.0/3.0, recs[1].SimilarityScore, 1e-6)
	})

	t.Run("SortedByNonIncreasingScore", func(t *testing.T) {
		catalog := testCatalog(t, abcDataset)
		svc := testRecommender(t, catalog, 3)

		recs, err := svc.Recommend(ctx, models.FeatureVector{Carbohydrates: 30, Protein: 3, Fat: 10})
		require.NoError(t, err)
		require.Len(t, recs, 3)
		for i := 1; i < len(recs); i++ {
			assert.GreaterOrEqual(t, recs[i-1].SimilarityScore, recs[i].SimilarityScore)
		}
	})

	t.Run("TiesBrokenByCatalogIndex", func(t *testing.T) {
		catalog := testCatalog(t, `[
			{ "name": "Right", "calories": 1, "carbohydrates_g": 11, "protein_g": 5, "fat_g": 2 },
			{ "name": "Left", "calories": 1, "carbohydrates_g": 9, "protein_g": 5, "fat_g": 2 },
			{ "name": "Far", "calories": 1, "carbohydrates_g": 90, "protein_g": 0, "fat_g": 0 }
		]`)
		svc := testRecommender(t, catalog, 2)

		// Right and Left are both at distance 1; index 0 wins.
		recs, err := svc.Recommend(ctx, models.FeatureVector{Carbohydrates: 10, Protein: 5, Fat: 2})
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Right", recs[0].Name)
		assert.Equal(t, "Left", recs[1].Name)
	})

	t.Run("Deterministic", func(t *testing.T) {
		catalog := testCatalog(t, abcDataset)
		svc := testRecommender(t, catalog, 3)

		query := models.FeatureVector{Carbohydrates: 20, Protein: 4, Fat: 8}
		first, err := svc.Recommend(ctx, query)
		require.NoError(t, err)
		second, err := svc.Recommend(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("InsufficientData", func(t *testing.T) {
		catalog := testCatalog(t, abcDataset)
		_, err := NewRecommendationService(catalog, 5)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("DefaultK", func(t *testing.T) {
		catalog := testCatalog(t, abcDataset)
		_, err := NewRecommendationService(catalog, 0)
		// k defaults to 5, which this 3-entry catalog cannot satisfy.
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("ScoresWithinUnitInterval", func(t *testing.T) {
		catalog := testCatalog(t, abcDataset)
		svc := testRecommender(t, catalog, 3)

		recs, err := svc.Recommend(ctx, models.FeatureVector{Carbohydrates: 1000, Protein: 1000, Fat: 1000})
		require.NoError(t, err)
		for _, rec := range recs {
			assert.Greater(t, rec.SimilarityScore, 0.0)
			assert.LessOrEqual(t, rec.SimilarityScore, 1.0)
		}
	})
}
