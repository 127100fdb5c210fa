package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"grocery-api/config"
	"grocery-api/controllers"
	"grocery-api/infra"
	"grocery-api/middlewares"
	"grocery-api/models"
	"grocery-api/repositories"
	"grocery-api/services"
)

func setupRouter(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *gin.Engine {

	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository, cfg, logger)
	authController := controllers.NewAuthController(authService)

	categoryRepository := repositories.NewCategoryRepository(db)
	categoryService := services.NewCategoryService(categoryRepository, logger)
	categoryController := controllers.NewCategoryController(categoryService)

	productRepository := repositories.NewProductRepository(db)
	productService := services.NewProductService(productRepository, logger)
	productController := controllers.NewProductController(productService)

	r := gin.Default()
	r.Use(cors.Default())

	authRequired := middlewares.AuthMiddleware(authService)

	r.POST("/token", authController.Token)
	r.POST("/users/", authController.Signup)
	r.GET("/categories/", categoryController.FindAll)
	r.POST("/categories/", authRequired, categoryController.Create)
	r.GET("/categories/:category_id/products/", productController.FindByCategory)
	r.GET("/products/", productController.FindAll)
	r.POST("/products/", authRequired, productController.Create)

	return r
}

func main() {
	infra.Initialize()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration")
	}
	logger := infra.SetupLogger(cfg)

	db := infra.SetupDB(cfg)

	// インメモリSQLiteの場合はテーブルが存在しないため常にマイグレーションする
	if cfg.AutoMigrate || cfg.DBName == "" {
		if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	r := setupRouter(db, cfg, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
