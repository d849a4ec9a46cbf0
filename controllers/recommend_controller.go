package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Syahrulalhabib/nutrivision-backend/models"
	"github.com/Syahrulalhabib/nutrivision-backend/services"
)

type RecommendController struct {
	pipeline *services.InferenceService
}

func NewRecommendController(pipeline *services.InferenceService) *RecommendController {
	return &RecommendController{pipeline: pipeline}
}

// POST /recommend  { "carbohydrates_g": 10, "protein_g": 5, "fat_g": 2 }
func (rc *RecommendController) Recommend(c *gin.Context) {
	var features models.FeatureVector
	if err := c.ShouldBindJSON(&features); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "carbohydrates_g, protein_g and fat_g are required and must be non-negative"})
		return
	}

	recs, err := rc.pipeline.InferFromFeatures(c.Request.Context(), features)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// POST /recommend-by-name  { "food_name": "Nasi Goreng" }
func (rc *RecommendController) RecommendByName(c *gin.Context) {
	var req struct {
		FoodName string `json:"food_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "food_name is required"})
		return
	}

	record, recs, err := rc.pipeline.InferFromName(c.Request.Context(), req.FoodName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"input_food": gin.H{
			"name":      record.Name,
			"nutrition": record.Nutrition(),
		},
		"recommendations": recs,
	})
}
