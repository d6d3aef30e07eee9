package services

import (
	"errors"

	"github.com/PaperBaghaha/Calorieai/config"
	"github.com/PaperBaghaha/Calorieai/models"
)

// ErrStoreUnavailable means the meal log database was not configured.
var ErrStoreUnavailable = errors.New("meal log store is not configured")

type MealService struct{}

func NewMealService() *MealService { return &MealService{} }

type DayTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LogMeal persists one confirmed nutrition payload as a meal log row.
func (s *MealService) LogMeal(payload *models.NutritionPayload) (*models.MealLog, error) {
	if config.DB == nil {
		return nil, ErrStoreUnavailable
	}

	entry := &models.MealLog{
		FoodName:   payload.FoodName,
		Confidence: payload.Confidence,
		Calories:   payload.Calories,
		Protein:    payload.Protein,
		Carbs:      payload.Carbs,
		Fat:        payload.Fat,
		Category:   payload.Category,
		ImageURL:   payload.ImageURL,
		Date:       payload.Date,
		RawVision:  payload.RawVision,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListMeals returns logged meals newest first, optionally filtered to one
// YYYY-MM-DD day, plus the macro totals of the returned rows. Null macros
// count as zero in the totals.
func (s *MealService) ListMeals(date string) ([]models.MealLog, DayTotals, error) {
	if config.DB == nil {
		return nil, DayTotals{}, ErrStoreUnavailable
	}

	q := config.DB.Order("created_at DESC")
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var meals []models.MealLog
	if err := q.Find(&meals).Error; err != nil {
		return nil, DayTotals{}, err
	}

	var totals DayTotals
	for _, m := range meals {
		totals.Calories += deref(m.Calories)
		totals.Protein += deref(m.Protein)
		totals.Carbs += deref(m.Carbs)
		totals.Fat += deref(m.Fat)
	}
	return meals, totals, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
