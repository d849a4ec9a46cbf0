package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `[
	{ "name": "Nasi Goreng", "calories": 267, "carbohydrates_g": 40.8, "protein_g": 5.6, "fat_g": 9.2 },
	{ "name": "Sate Ayam", "calories": 225, "carbohydrates_g": 6.8, "protein_g": 25.5, "fat_g": 11.0 },
	{ "name": "Gado-Gado", "calories": 137, "carbohydrates_g": 12.0, "protein_g": 6.1, "fat_g": 7.5 }
]`

func TestCatalogService(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		catalog, err := NewCatalogService(strings.NewReader(testDataset))
		require.NoError(t, err)
		assert.Equal(t, 3, catalog.Size())
	})

	t.Run("IndexAssignedInSourceOrder", func(t *testing.T) {
		catalog, err := NewCatalogService(strings.NewReader(testDataset))
		require.NoError(t, err)

		for i := 0; i < catalog.Size(); i++ {
			rec, err := catalog.GetByIndex(i)
			require.NoError(t, err)
			assert.Equal(t, i, rec.Index)
		}

		first, err := catalog.GetByIndex(0)
		require.NoError(t, err)
		assert.Equal(t, "Nasi Goreng", first.Name)
		assert.Equal(t, 40.8, first.Carbohydrates)
	})

	t.Run("GetByIndexOutOfRange", func(t *testing.T) {
		catalog, err := NewCatalogService(strings.NewReader(testDataset))
		require.NoError(t, err)

		_, err = catalog.GetByIndex(-1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = catalog.GetByIndex(3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("FindByNameCaseInsensitive", func(t *testing.T) {
		catalog, err := NewCatalogService(strings.NewReader(testDataset))
		require.NoError(t, err)

		upper, ok := catalog.FindByName("Nasi Goreng")
		require.True(t, ok)
		lower, ok := catalog.FindByName("nasi goreng")
		require.True(t, ok)
		assert.Equal(t, upper, lower)

		_, ok = catalog.FindByName("pizza")
		assert.False(t, ok)
	})

	t.Run("FirstMatchWinsOnDuplicates", func(t *testing.T) {
		catalog, err := NewCatalogService(strings.NewReader(`[
			{ "name": "Bakso", "calories": 218, "carbohydrates_g": 15.5, "protein_g": 14.7, "fat_g": 10.9 },
			{ "name": "bakso", "calories": 100, "carbohydrates_g": 1.0, "protein_g": 1.0, "fat_g": 1.0 }
		]`))
		require.NoError(t, err)

		rec, ok := catalog.FindByName("BAKSO")
		require.True(t, ok)
		assert.Equal(t, 0, rec.Index)
	})

	t.Run("EmptyDataset", func(t *testing.T) {
		_, err := NewCatalogService(strings.NewReader(`[]`))
		assert.ErrorIs(t, err, ErrDataLoad)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := NewCatalogService(strings.NewReader(`{not json`))
		assert.ErrorIs(t, err, ErrDataLoad)
	})

	t.Run("MissingField", func(t *testing.T) {
		_, err := NewCatalogService(strings.NewReader(`[
			{ "name": "Bakso", "calories": 218, "protein_g": 14.7, "fat_g": 10.9 }
		]`))
		assert.ErrorIs(t, err, ErrDataLoad)
	})

	t.Run("NonNumericField", func(t *testing.T) {
		_, err := NewCatalogService(strings.NewReader(`[
			{ "name": "Bakso", "calories": "many", "carbohydrates_g": 15.5, "protein_g": 14.7, "fat_g": 10.9 }
		]`))
		assert.ErrorIs(t, err, ErrDataLoad)
	})

	t.Run("NegativeMacro", func(t *testing.T) {
		_, err := NewCatalogService(strings.NewReader(`[
			{ "name": "Bakso", "calories": 218, "carbohydrates_g": -1, "protein_g": 14.7, "fat_g": 10.9 }
		]`))
		assert.ErrorIs(t, err, ErrDataLoad)
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := NewCatalogService(strings.NewReader(`[
			{ "calories": 218, "carbohydrates_g": 15.5, "protein_g": 14.7, "fat_g": 10.9 }
		]`))
		assert.ErrorIs(t, err, ErrDataLoad)
	})
}
