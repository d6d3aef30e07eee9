package controllers

import (
	"errors"
	"net/http"

	"github.com/PaperBaghaha/Calorieai/models"
	"github.com/PaperBaghaha/Calorieai/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Hub *services.RealtimeHub
}

func NewMealController(hub *services.RealtimeHub) *MealController {
	return &MealController{Hub: hub}
}

// POST /meals — save an analyzed (and possibly user-corrected) payload.
func (mc *MealController) LogMeal(c *gin.Context) {
	var body models.NutritionPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.NewMealService().LogMeal(&body)
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "meal log unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.Hub.BroadcastMeal(entry)
	c.JSON(http.StatusCreated, entry)
}

// GET /meals?date=YYYY-MM-DD — logged meals newest first plus day totals.
func (mc *MealController) ListMeals(c *gin.Context) {
	meals, totals, err := services.NewMealService().ListMeals(c.Query("date"))
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "meal log unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": meals, "day_total": totals})
}
