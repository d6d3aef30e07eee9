package services

import (
	"encoding/json"
	"strings"

	"github.com/PaperBaghaha/Calorieai/models"
)

const (
	defaultFoodName    = "Unknown"
	defaultConfidence  = 60
	defaultPortionDesc = "1 serving"
	defaultCategory    = "main_course"

	heuristicPortion  = "medium"
	heuristicMaxLabel = 80
)

// ParseFoodGuess recovers a food identification from raw vision text. The
// text usually contains an embedded JSON object but is not guaranteed
// well-formed, so a strict decode is tried first and a line-based heuristic
// second. The function is total: it never fails and every field of the result
// is populated.
func ParseFoodGuess(text string) models.ParsedFoodGuess {
	if obj, ok := extractJSONObject(text); ok {
		var fields struct {
			FoodName    string   `json:"food_name"`
			Food        string   `json:"food"` // alternate key some replies use
			Confidence  *float64 `json:"confidence"`
			PortionDesc string   `json:"portion_desc"`
			Category    string   `json:"category"`
		}
		if err := json.Unmarshal([]byte(obj), &fields); err == nil {
			guess := models.ParsedFoodGuess{
				FoodName:    fields.FoodName,
				Confidence:  defaultConfidence,
				PortionDesc: fields.PortionDesc,
				Category:    fields.Category,
			}
			if guess.FoodName == "" {
				guess.FoodName = fields.Food
			}
			if guess.FoodName == "" {
				guess.FoodName = defaultFoodName
			}
			if fields.Confidence != nil {
				guess.Confidence = *fields.Confidence
			}
			if guess.PortionDesc == "" {
				guess.PortionDesc = defaultPortionDesc
			}
			if guess.Category == "" {
				guess.Category = defaultCategory
			}
			return guess
		}
	}
	return heuristicGuess(text)
}

// extractJSONObject returns the greedy first-'{' to last-'}' substring, which
// also strips surrounding prose and code fences.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// heuristicGuess is the loose branch: the first non-empty line becomes the
// label, truncated to 80 characters.
func heuristicGuess(text string) models.ParsedFoodGuess {
	label := ""
	for _, line := range strings.Split(text, "\n") {
		if l := strings.TrimSpace(line); l != "" {
			label = l
			break
		}
	}
	if r := []rune(label); len(r) > heuristicMaxLabel {
		label = string(r[:heuristicMaxLabel])
	}
	if label == "" {
		label = defaultFoodName
	}
	return models.ParsedFoodGuess{
		FoodName:    label,
		Confidence:  defaultConfidence,
		PortionDesc: heuristicPortion,
		Category:    defaultCategory,
	}
}

// BuildNutritionQuery combines the portion description and food label into
// the natural-language phrase the nutrition provider expects, e.g.
// "2 slices Pizza".
func BuildNutritionQuery(guess models.ParsedFoodGuess) string {
	return guess.PortionDesc + " " + guess.FoodName
}
