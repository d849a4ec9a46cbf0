package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Syahrulalhabib/nutrivision-backend/utils"
)

type CalculatorController struct{}

func NewCalculatorController() *CalculatorController {
	return &CalculatorController{}
}

type calculateRequest struct {
	Weight        float64 `json:"weight" binding:"required"`
	Height        float64 `json:"height" binding:"required"`
	Age           float64 `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
}

// POST /calculate — daily energy and macronutrient targets from body
// metrics. Pure computation, no shared state.
func (cc *CalculatorController) Calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "weight, height, age, gender and activity_level are required"})
		return
	}

	bmr, err := utils.CalculateBMR(req.Weight, req.Height, req.Age, req.Gender)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	tdee, err := utils.CalculateTDEE(bmr, req.ActivityLevel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}
	carbs, protein, fat := utils.MacroTargets(tdee)

	resp := gin.H{
		"bmr":  bmr,
		"tdee": tdee,
		"daily_targets": gin.H{
			"carbohydrates_g": carbs,
			"protein_g":       protein,
			"fat_g":           fat,
		},
	}
	if bmi, err := utils.CalculateBMI(req.Height, req.Weight); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, resp)
}
