package repositories

import (
	"gorm.io/gorm"

	"grocery-api/models"
)

type IProductRepository interface {
	Create(newProduct models.Product) (*models.Product, error)
	FindAll(skip int, limit int) (*[]models.Product, error)
	FindByCategory(categoryID uint) (*[]models.Product, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(newProduct models.Product) (*models.Product, error) {
	result := r.db.Create(&newProduct)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newProduct, nil
}

func (r *ProductRepository) FindAll(skip int, limit int) (*[]models.Product, error) {
	var products []models.Product
	result := r.db.Offset(skip).Limit(limit).Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

// FindByCategory Categoryの存在チェックは行わない（存在しないIDでも空スライスを返す）
func (r *ProductRepository) FindByCategory(categoryID uint) (*[]models.Product, error) {
	var products []models.Product
	result := r.db.Where("category_id = ?", categoryID).Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}
