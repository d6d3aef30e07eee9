package services

import (
	"context"
	"log"
	"time"

	"github.com/PaperBaghaha/Calorieai/models"
)

type AnalyzeService struct {
	vision *VisionService
	nutri  *NutritionixService
}

func NewAnalyzeService(vision *VisionService, nutri *NutritionixService) *AnalyzeService {
	return &AnalyzeService{vision: vision, nutri: nutri}
}

// Analyze runs the full pipeline for one image: vision identification, text
// extraction, field parsing, nutrition lookup, payload assembly. Only a
// vision failure aborts the request; every later stage has a defined default,
// so a started parse always reaches an assembled payload.
func (s *AnalyzeService) Analyze(ctx context.Context, image []byte) (*models.NutritionPayload, error) {
	raw, err := s.vision.Identify(ctx, image)
	if err != nil {
		return nil, err
	}

	visionText := ExtractVisionText(raw)
	guess := ParseFoodGuess(visionText)

	nutrition, err := s.nutri.NaturalNutrients(ctx, BuildNutritionQuery(guess))
	if err != nil {
		// Recoverable: the lookup is best-effort and a placeholder beats a failure.
		log.Printf("Nutritionix lookup failed: %v", err)
		nutrition = nil
	}
	if nutrition == nil {
		nutrition = FallbackNutrition()
	}

	return &models.NutritionPayload{
		FoodName:   guess.FoodName,
		Confidence: guess.Confidence,
		Calories:   nutrition.Calories,
		Protein:    nutrition.Protein,
		Carbs:      nutrition.Carbs,
		Fat:        nutrition.Fat,
		Category:   guess.Category,
		ImageURL:   nil,
		Date:       time.Now().UTC().Format("2006-01-02"),
		RawVision:  visionText,
	}, nil
}
