package models

import "gorm.io/gorm"

// MealLog is one meal the user confirmed and saved: the nutrition payload
// flattened into a row. Kept outside the analysis pipeline, which never
// retains state across requests.
type MealLog struct {
	gorm.Model
	FoodName   string   `json:"food_name"`
	Confidence float64  `json:"confidence"`
	Calories   *float64 `json:"calories"`
	Protein    *float64 `json:"protein"`
	Carbs      *float64 `json:"carbs"`
	Fat        *float64 `json:"fat"`
	Category   string   `json:"category"`
	ImageURL   *string  `json:"image_url"`
	Date       string   `gorm:"index" json:"date"` // YYYY-MM-DD, day the photo was analyzed
	RawVision  string   `json:"raw_vision"`
}
