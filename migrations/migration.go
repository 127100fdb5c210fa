package main

import (
	"grocery-api/config"
	"grocery-api/infra"
	"grocery-api/models"
)

func main() {
	infra.Initialize()
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration")
	}
	db := infra.SetupDB(cfg)

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}); err != nil {
		panic("Failed to migrate database")
	}
}
