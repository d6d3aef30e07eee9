package routes

import (
	"net/http"

	"github.com/PaperBaghaha/Calorieai/controllers"
	"github.com/PaperBaghaha/Calorieai/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Wrong-method requests get an explicit 405 instead of a 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	food := r.Group("/food")
	{
		food.POST("/analyze", controllers.AnalyzeFood)
	}

	mc := controllers.NewMealController(hub)
	meals := r.Group("/meals")
	{
		meals.POST("", mc.LogMeal)
		meals.GET("", mc.ListMeals)
	}

	rc := controllers.NewRealtimeController(hub)
	r.GET("/ws/meals", rc.MealsWS)

	return r
}
