package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PaperBaghaha/Calorieai/models"
)

type NutritionixService struct {
	appID, appKey string
	baseURL       string
	client        *http.Client
}

func NewNutritionixService(appID, appKey, baseURL string) *NutritionixService {
	return &NutritionixService{
		appID:   appID,
		appKey:  appKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type naturalNutrientsResponse struct {
	Foods []struct {
		NfCalories          *float64 `json:"nf_calories"`
		NfProtein           *float64 `json:"nf_protein"`
		NfTotalCarbohydrate *float64 `json:"nf_total_carbohydrate"`
		NfTotalFat          *float64 `json:"nf_total_fat"`
		ServingQty          *float64 `json:"serving_qty"`
		ServingUnit         string   `json:"serving_unit"`
	} `json:"foods"`
}

// NaturalNutrients resolves a natural-language food query against the
// Nutritionix natural/nutrients endpoint and normalizes the first match.
// A nil result with a nil error is the no-data marker: credentials absent
// (no call is made), a non-success status, or zero matching foods.
func (s *NutritionixService) NaturalNutrients(ctx context.Context, query string) (*models.NutritionResult, error) {
	if s.appID == "" || s.appKey == "" {
		return nil, nil
	}

	payload, err := json.Marshal(map[string]string{"query": query, "timezone": "UTC"})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrition payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v2/natural/nutrients", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.appKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Nutritionix API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("Nutritionix lookup failed %d: %s", resp.StatusCode, string(body))
		return nil, nil
	}

	var nr naturalNutrientsResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}
	if len(nr.Foods) == 0 {
		return nil, nil
	}

	first := nr.Foods[0]
	return &models.NutritionResult{
		Calories:    first.NfCalories,
		Protein:     first.NfProtein,
		Carbs:       first.NfTotalCarbohydrate,
		Fat:         first.NfTotalFat,
		ServingQty:  first.ServingQty,
		ServingUnit: first.ServingUnit,
	}, nil
}

// FallbackNutrition is the placeholder estimate used when no nutrition data
// is available at all: fixed worst-case numbers, not a computed estimate. It
// keeps the final payload's macros numeric when the provider has nothing.
func FallbackNutrition() *models.NutritionResult {
	return &models.NutritionResult{
		Calories: floatPtr(400),
		Protein:  floatPtr(20),
		Carbs:    floatPtr(45),
		Fat:      floatPtr(15),
	}
}

func floatPtr(v float64) *float64 { return &v }
