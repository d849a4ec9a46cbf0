package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Syahrulalhabib/nutrivision-backend/controllers"
	"github.com/Syahrulalhabib/nutrivision-backend/services"
)

// SetupRouter wires the HTTP surface. The pipeline is fully initialized
// before this is called; handlers only read shared state.
func SetupRouter(pipeline *services.InferenceService) *gin.Engine {
	r := gin.Default()

	predict := controllers.NewPredictController(pipeline)
	recommend := controllers.NewRecommendController(pipeline)
	calculator := controllers.NewCalculatorController()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/predict", predict.Predict)
	r.POST("/recommend", recommend.Recommend)
	r.POST("/recommend-by-name", recommend.RecommendByName)
	r.POST("/calculate", calculator.Calculate)

	return r
}
