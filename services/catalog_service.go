package services

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/Syahrulalhabib/nutrivision-backend/models"
)

// CatalogService holds the nutrition dataset in memory. It is built once at
// startup and read-only afterwards, so concurrent lookups need no locking.
// Record order in the source defines the class index contract with the
// classifier.
type CatalogService struct {
	records []models.FoodRecord
	byName  map[string]int
}

type rawFoodRecord struct {
	Name          *string  `json:"name"`
	Calories      *float64 `json:"calories"`
	Carbohydrates *float64 `json:"carbohydrates_g"`
	Protein       *float64 `json:"protein_g"`
	Fat           *float64 `json:"fat_g"`
}

// NewCatalogService parses a JSON array of food records. Records are indexed
// 0..N-1 in source order.
func NewCatalogService(r io.Reader) (*CatalogService, error) {
	var raw []rawFoodRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}

	records := make([]models.FoodRecord, 0, len(raw))
	for i, rr := range raw {
		rec, err := rr.validate(i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return newCatalog(records)
}

// NewCatalogServiceFromFile loads the catalog from a JSON dataset file.
func NewCatalogServiceFromFile(path string) (*CatalogService, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open dataset: %v", ErrDataLoad, err)
	}
	defer f.Close()
	return NewCatalogService(f)
}

// NewCatalogServiceFromDB loads the catalog from the food_items table,
// ordered by class_index. The stored indices must be contiguous from zero.
func NewCatalogServiceFromDB(db *gorm.DB) (*CatalogService, error) {
	var records []models.FoodRecord
	if err := db.Order("class_index asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: query food_items: %v", ErrDataLoad, err)
	}
	for i, rec := range records {
		if rec.Index != i {
			return nil, fmt.Errorf("%w: class_index not contiguous at row %d (got %d)", ErrDataLoad, i, rec.Index)
		}
		if rec.Name == "" || rec.Carbohydrates < 0 || rec.Protein < 0 || rec.Fat < 0 || rec.Calories < 0 {
			return nil, fmt.Errorf("%w: invalid record at class_index %d", ErrDataLoad, i)
		}
	}
	return newCatalog(records)
}

func (rr rawFoodRecord) validate(index int) (models.FoodRecord, error) {
	var zero models.FoodRecord
	if rr.Name == nil || *rr.Name == "" {
		return zero, fmt.Errorf("%w: record %d: missing name", ErrDataLoad, index)
	}
	for field, v := range map[string]*float64{
		"calories":        rr.Calories,
		"carbohydrates_g": rr.Carbohydrates,
		"protein_g":       rr.Protein,
		"fat_g":           rr.Fat,
	} {
		if v == nil {
			return zero, fmt.Errorf("%w: record %d (%s): missing %s", ErrDataLoad, index, *rr.Name, field)
		}
		if *v < 0 {
			return zero, fmt.Errorf("%w: record %d (%s): negative %s", ErrDataLoad, index, *rr.Name, field)
		}
	}
	return models.FoodRecord{
		Index:         index,
		Name:          *rr.Name,
		Calories:      *rr.Calories,
		Carbohydrates: *rr.Carbohydrates,
		Protein:       *rr.Protein,
		Fat:           *rr.Fat,
	}, nil
}

func newCatalog(records []models.FoodRecord) (*CatalogService, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", ErrDataLoad)
	}
	byName := make(map[string]int, len(records))
	for i, rec := range records {
		key := strings.ToLower(rec.Name)
		if _, ok := byName[key]; !ok {
			// first match wins on duplicate names
			byName[key] = i
		}
	}
	return &CatalogService{records: records, byName: byName}, nil
}

// GetByIndex returns the record with the given class index.
func (s *CatalogService) GetByIndex(i int) (models.FoodRecord, error) {
	if i < 0 || i >= len(s.records) {
		return models.FoodRecord{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.records))
	}
	return s.records[i], nil
}

// FindByName looks up a record by case-insensitive exact name match.
func (s *CatalogService) FindByName(name string) (models.FoodRecord, bool) {
	i, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return models.FoodRecord{}, false
	}
	return s.records[i], true
}

// Size returns the number of catalog entries.
func (s *CatalogService) Size() int { return len(s.records) }

// Records returns the catalog in class-index order. Callers must not
// modify the returned slice.
func (s *CatalogService) Records() []models.FoodRecord { return s.records }
