package models

// ParsedFoodGuess is the food identification recovered from the vision model's
// text. Every field is populated; missing values get fixed defaults upstream.
// The record is never mutated after the parser returns it.
type ParsedFoodGuess struct {
	FoodName    string  `json:"food_name"`
	Confidence  float64 `json:"confidence"` // 0–100
	PortionDesc string  `json:"portion_desc"`
	Category    string  `json:"category"`
}

// NutritionResult holds the normalized macros of one matched food. Pointer
// fields distinguish "provider had no value" (nil → null) from a zero value.
type NutritionResult struct {
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	ServingQty  *float64 `json:"serving_qty,omitempty"`
	ServingUnit string   `json:"serving_unit,omitempty"`
}

// NutritionPayload is the final record returned for one analyzed photo.
// Numeric fields are either finite numbers or null, never NaN. Date is the
// UTC day of processing, raw_vision the extracted model text verbatim.
type NutritionPayload struct {
	FoodName   string   `json:"food_name"`
	Confidence float64  `json:"confidence"`
	Calories   *float64 `json:"calories"`
	Protein    *float64 `json:"protein"`
	Carbs      *float64 `json:"carbs"`
	Fat        *float64 `json:"fat"`
	Category   string   `json:"category"`
	ImageURL   *string  `json:"image_url"`
	Date       string   `json:"date"` // YYYY-MM-DD
	RawVision  string   `json:"raw_vision"`
}
