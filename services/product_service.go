package services

import (
	"github.com/sirupsen/logrus"

	"grocery-api/dto"
	"grocery-api/models"
	"grocery-api/repositories"
)

type IProductService interface {
	FindAll(skip int, limit int) (*[]models.Product, error)
	FindByCategory(categoryID uint) (*[]models.Product, error)
	Create(createProductInput dto.CreateProductInput) (*models.Product, error)
}

type ProductService struct {
	repository repositories.IProductRepository
	log        *logrus.Logger
}

func NewProductService(repository repositories.IProductRepository, logger *logrus.Logger) IProductService {
	return &ProductService{repository: repository, log: logger}
}

func (s *ProductService) FindAll(skip int, limit int) (*[]models.Product, error) {
	return s.repository.FindAll(skip, limit)
}

func (s *ProductService) FindByCategory(categoryID uint) (*[]models.Product, error) {
	return s.repository.FindByCategory(categoryID)
}

// Create category_idの存在チェックは行わない（ストア側の制約に委ねる）
func (s *ProductService) Create(createProductInput dto.CreateProductInput) (*models.Product, error) {
	newProduct := models.Product{
		Name:       *createProductInput.Name,
		Price:      *createProductInput.Price,
		Image:      *createProductInput.Image,
		Unit:       *createProductInput.Unit,
		CategoryID: *createProductInput.CategoryID,
	}
	created, err := s.repository.Create(newProduct)
	if err != nil {
		s.log.Errorf("Create product error: %v", err)
		return nil, err
	}
	s.log.Infof("Product created: id=%d name=%s category=%d", created.ID, created.Name, created.CategoryID)
	return created, nil
}
