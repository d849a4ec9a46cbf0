package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Syahrulalhabib/nutrivision-backend/services"
)

type PredictController struct {
	pipeline *services.InferenceService
}

func NewPredictController(pipeline *services.InferenceService) *PredictController {
	return &PredictController{pipeline: pipeline}
}

// POST /predict  multipart form with an image under "file"
func (pc *PredictController) Predict(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "no file uploaded"})
		return
	}

	// Stage the upload to a scoped temp file; removed whatever the
	// pipeline outcome.
	tmpPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("upload-%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "failed to store upload"})
		return
	}
	defer os.Remove(tmpPath)

	imageBytes, err := os.ReadFile(tmpPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "failed to read upload"})
		return
	}

	result, err := pc.pipeline.InferFromImage(c.Request.Context(), imageBytes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
