package main

import (
	"github.com/PaperBaghaha/Calorieai/config"
	"github.com/PaperBaghaha/Calorieai/routes"
	"github.com/PaperBaghaha/Calorieai/services"
)

func main() {
	config.InitApp()
	config.InitDB()

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(hub)
	r.Run(":" + config.App.Port)
}
