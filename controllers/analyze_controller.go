package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/PaperBaghaha/Calorieai/config"
	"github.com/PaperBaghaha/Calorieai/services"
	"github.com/PaperBaghaha/Calorieai/utils"

	"github.com/gin-gonic/gin"
)

func newAnalyzeService() *services.AnalyzeService {
	vision := services.NewVisionService(config.App.OpenAIAPIKey, config.App.VisionModel, config.App.OpenAIBaseURL)
	nutri := services.NewNutritionixService(config.App.NutritionixAppID, config.App.NutritionixAppKey, config.App.NutritionixBaseURL)
	return services.NewAnalyzeService(vision, nutri)
}

// POST /food/analyze — multipart field "image", or JSON {"image_base64": "…"}
// (bare base64 or a data URI). Nutrition-provider trouble never surfaces
// here; only a missing image or an unusable vision provider fails the request.
func AnalyzeFood(c *gin.Context) {
	image, ok := readImage(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	payload, err := newAnalyzeService().Analyze(c.Request.Context(), image)
	if err != nil {
		var ve *services.VisionError
		switch {
		case errors.Is(err, services.ErrMissingVisionKey):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing OpenAI key in env"})
		case errors.As(err, &ve):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OpenAI vision error", "details": ve.Body})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OpenAI vision error", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, payload)
}

func readImage(c *gin.Context) ([]byte, bool) {
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, false
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil || len(data) == 0 {
			return nil, false
		}
		return data, true
	}

	var req struct {
		ImageBase64 string `json:"image_base64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageBase64 == "" {
		return nil, false
	}
	data, _, err := utils.DecodeBase64Image(req.ImageBase64)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}
