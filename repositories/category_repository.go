package repositories

import (
	"gorm.io/gorm"

	"grocery-api/models"
)

type ICategoryRepository interface {
	Create(newCategory models.Category) (*models.Category, error)
	FindAll(skip int, limit int) (*[]models.Category, error)
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(newCategory models.Category) (*models.Category, error) {
	result := r.db.Create(&newCategory)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newCategory, nil
}

// FindAll 所属するProductをあわせて取得する（読み取りビューでネストされるため）
func (r *CategoryRepository) FindAll(skip int, limit int) (*[]models.Category, error) {
	var categories []models.Category
	result := r.db.Preload("Products").Offset(skip).Limit(limit).Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return &categories, nil
}
