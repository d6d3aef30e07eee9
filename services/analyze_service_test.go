package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const pizzaVisionBody = `{"output":[{"content":[{"type":"output_text","text":"{\"food_name\":\"Pizza\",\"confidence\":85,\"portion_desc\":\"2 slices\"}"}]}]}`

func visionStub(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
}

func TestAnalyzeResolvesNutrition(t *testing.T) {
	vision := visionStub(t, pizzaVisionBody)
	defer vision.Close()

	nutri := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods":[{"nf_calories":570,"nf_protein":24.2,"nf_total_carbohydrate":63,"nf_total_fat":21}]}`))
	}))
	defer nutri.Close()

	svc := NewAnalyzeService(
		NewVisionService("k", "gpt-4o-mini", vision.URL),
		NewNutritionixService("id", "key", nutri.URL),
	)

	payload, err := svc.Analyze(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if payload.FoodName != "Pizza" || payload.Confidence != 85 || payload.Category != "main_course" {
		t.Errorf("payload = %+v", payload)
	}
	if *payload.Calories != 570 || *payload.Protein != 24.2 || *payload.Carbs != 63 || *payload.Fat != 21 {
		t.Errorf("macros = %v %v %v %v", payload.Calories, payload.Protein, payload.Carbs, payload.Fat)
	}
	if payload.ImageURL != nil {
		t.Errorf("ImageURL = %v, want nil", payload.ImageURL)
	}
	if payload.Date != time.Now().UTC().Format("2006-01-02") {
		t.Errorf("Date = %q", payload.Date)
	}
	if payload.RawVision != `{"food_name":"Pizza","confidence":85,"portion_desc":"2 slices"}` {
		t.Errorf("RawVision = %q", payload.RawVision)
	}
}

func TestAnalyzeFallsBackWithoutCredentials(t *testing.T) {
	vision := visionStub(t, pizzaVisionBody)
	defer vision.Close()

	svc := NewAnalyzeService(
		NewVisionService("k", "gpt-4o-mini", vision.URL),
		NewNutritionixService("", "", "http://localhost:0"),
	)

	payload, err := svc.Analyze(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if *payload.Calories != 400 || *payload.Protein != 20 || *payload.Carbs != 45 || *payload.Fat != 15 {
		t.Errorf("fallback macros = %v %v %v %v", payload.Calories, payload.Protein, payload.Carbs, payload.Fat)
	}
}

func TestAnalyzeFallsBackOnZeroMatches(t *testing.T) {
	vision := visionStub(t, pizzaVisionBody)
	defer vision.Close()

	nutri := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods":[]}`))
	}))
	defer nutri.Close()

	svc := NewAnalyzeService(
		NewVisionService("k", "gpt-4o-mini", vision.URL),
		NewNutritionixService("id", "key", nutri.URL),
	)

	payload, err := svc.Analyze(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if *payload.Calories != 400 || *payload.Protein != 20 || *payload.Carbs != 45 || *payload.Fat != 15 {
		t.Errorf("fallback macros = %v %v %v %v", payload.Calories, payload.Protein, payload.Carbs, payload.Fat)
	}
}

func TestAnalyzeHeuristicParseStillAssembles(t *testing.T) {
	vision := visionStub(t, `{"choices":[{"message":{"content":"I think this is a salad bowl."}}]}`)
	defer vision.Close()

	svc := NewAnalyzeService(
		NewVisionService("k", "gpt-4o-mini", vision.URL),
		NewNutritionixService("", "", "http://localhost:0"),
	)

	payload, err := svc.Analyze(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if payload.FoodName != "I think this is a salad bowl." || payload.Confidence != 60 {
		t.Errorf("payload = %+v", payload)
	}
	if payload.RawVision != "I think this is a salad bowl." {
		t.Errorf("RawVision = %q", payload.RawVision)
	}
}

func TestAnalyzeVisionFailureIsFatal(t *testing.T) {
	vision := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("overloaded"))
	}))
	defer vision.Close()

	nutriCalls := 0
	nutri := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nutriCalls++
	}))
	defer nutri.Close()

	svc := NewAnalyzeService(
		NewVisionService("k", "gpt-4o-mini", vision.URL),
		NewNutritionixService("id", "key", nutri.URL),
	)

	if _, err := svc.Analyze(context.Background(), []byte("img")); err == nil {
		t.Fatal("Analyze should fail when the vision call fails")
	}
	if nutriCalls != 0 {
		t.Errorf("nutrition provider was called %d times after vision failure, want 0", nutriCalls)
	}
}
