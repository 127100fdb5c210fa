package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"grocery-api/config"
	"grocery-api/constants"
	"grocery-api/models"
	"grocery-api/repositories"
)

type IAuthService interface {
	Signup(email string, fullName string, password string) (*models.User, error)
	Login(email string, password string) (*string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
	cfg        *config.Config
	log        *logrus.Logger
}

func NewAuthService(repository repositories.IAuthRepository, cfg *config.Config, logger *logrus.Logger) IAuthService {
	return &AuthService{
		repository: repository,
		cfg:        cfg,
		log:        logger,
	}
}

func (s *AuthService) Signup(email string, fullName string, password string) (*models.User, error) {
	// 登録済みメールアドレスの事前チェック
	if _, err := s.repository.FindUser(email); err == nil {
		return nil, errors.New(constants.ErrEmailRegistered)
	} else if err.Error() != constants.ErrUserNotFound {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          email,
		FullName:       fullName,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
	}
	newUser, err := s.repository.CreateUser(user)
	if err != nil {
		// 事前チェックをすり抜けた同時登録はユニーク制約で弾かれる
		if isDuplicateKeyError(err) {
			s.log.Warnf("Signup rejected, email already registered: %s", email)
			return nil, errors.New(constants.ErrEmailRegistered)
		}
		return nil, err
	}

	s.log.Infof("User registered: id=%d email=%s", newUser.ID, newUser.Email)
	return newUser, nil
}

func (s *AuthService) Login(email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUser(email)
	if err != nil {
		if err.Error() == constants.ErrUserNotFound {
			return nil, errors.New(constants.ErrIncorrectCredentials)
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.HashedPassword), []byte(password))
	if err != nil {
		return nil, errors.New(constants.ErrIncorrectCredentials)
	}

	token, err := s.CreateToken(foundUser.Email)
	if err != nil {
		return nil, err
	}

	return token, nil
}

func (s *AuthService) CreateToken(email string) (*string, error) {
	ttl := time.Duration(s.cfg.TokenTTLMinutes) * time.Minute
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	email, err := claims.GetSubject()
	if err != nil || email == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	user, err := s.repository.FindUser(email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func isDuplicateKeyError(err error) bool {
	return strings.Contains(err.Error(), "duplicate") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
