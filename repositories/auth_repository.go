package repositories

import (
	"errors"

	"gorm.io/gorm"

	"grocery-api/constants"
	"grocery-api/models"
)

type IAuthRepository interface {
	CreateUser(user models.User) (*models.User, error)
	FindUser(email string) (*models.User, error)
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateUser(user models.User) (*models.User, error) {
	result := r.db.Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindUser(email string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrUserNotFound)
		}
		return nil, result.Error
	}
	return &user, nil
}
