package services

import (
	"github.com/sirupsen/logrus"

	"grocery-api/dto"
	"grocery-api/models"
	"grocery-api/repositories"
)

type ICategoryService interface {
	FindAll(skip int, limit int) (*[]models.Category, error)
	Create(createCategoryInput dto.CreateCategoryInput) (*models.Category, error)
}

type CategoryService struct {
	repository repositories.ICategoryRepository
	log        *logrus.Logger
}

func NewCategoryService(repository repositories.ICategoryRepository, logger *logrus.Logger) ICategoryService {
	return &CategoryService{repository: repository, log: logger}
}

func (s *CategoryService) FindAll(skip int, limit int) (*[]models.Category, error) {
	return s.repository.FindAll(skip, limit)
}

func (s *CategoryService) Create(createCategoryInput dto.CreateCategoryInput) (*models.Category, error) {
	newCategory := models.Category{
		Name: *createCategoryInput.Name,
	}
	created, err := s.repository.Create(newCategory)
	if err != nil {
		s.log.Errorf("Create category error: %v", err)
		return nil, err
	}
	s.log.Infof("Category created: id=%d name=%s", created.ID, created.Name)
	return created, nil
}
