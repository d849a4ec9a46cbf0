package models

// FoodRecord is one catalog entry. Index is the stable class index assigned
// in dataset order at load time and matches the classifier's output space.
type FoodRecord struct {
	Index         int     `json:"-" gorm:"column:class_index;uniqueIndex;not null"`
	Name          string  `json:"name" gorm:"not null"`
	Calories      float64 `json:"calories" gorm:"not null"`
	Carbohydrates float64 `json:"carbohydrates_g" gorm:"column:carbohydrates_g;not null"`
	Protein       float64 `json:"protein_g" gorm:"column:protein_g;not null"`
	Fat           float64 `json:"fat_g" gorm:"column:fat_g;not null"`
}

func (FoodRecord) TableName() string { return "food_items" }

// Features returns the macronutrient triple used as the similarity space.
func (r FoodRecord) Features() FeatureVector {
	return FeatureVector{
		Carbohydrates: r.Carbohydrates,
		Protein:       r.Protein,
		Fat:           r.Fat,
	}
}

// Nutrition returns the wire shape for the record's nutrition values.
func (r FoodRecord) Nutrition() Nutrition {
	return Nutrition{
		Calories:      r.Calories,
		Carbohydrates: r.Carbohydrates,
		Protein:       r.Protein,
		Fat:           r.Fat,
	}
}

// FeatureVector is the (carbohydrates, protein, fat) triple, all in grams.
type FeatureVector struct {
	Carbohydrates float64 `json:"carbohydrates_g" binding:"min=0"`
	Protein       float64 `json:"protein_g" binding:"min=0"`
	Fat           float64 `json:"fat_g" binding:"min=0"`
}

// Values returns the vector in index order.
func (v FeatureVector) Values() []float32 {
	return []float32{float32(v.Carbohydrates), float32(v.Protein), float32(v.Fat)}
}

type Nutrition struct {
	Calories      float64 `json:"calories"`
	Carbohydrates float64 `json:"carbohydrates_g"`
	Protein       float64 `json:"protein_g"`
	Fat           float64 `json:"fat_g"`
}

// ClassificationResult is the classifier output for a single image.
type ClassificationResult struct {
	ClassIndex int     `json:"class_index"`
	Confidence float64 `json:"confidence"`
}

// Recommendation pairs a catalog record with its similarity to the query,
// where score = 1/(1+d) for Euclidean distance d.
type Recommendation struct {
	Name            string    `json:"name"`
	Nutrition       Nutrition `json:"nutrition"`
	SimilarityScore float64   `json:"similarity_score"`
}

// InferenceResult is the combined output of the image pipeline.
type InferenceResult struct {
	FoodName        string           `json:"food_name"`
	Confidence      float64          `json:"confidence"`
	Nutrition       Nutrition        `json:"nutrition"`
	Recommendations []Recommendation `json:"recommendations"`
}
