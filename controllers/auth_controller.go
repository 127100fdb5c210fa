package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-api/constants"
	"grocery-api/dto"
	"grocery-api/services"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Token(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	newUser, err := c.service.Signup(*input.Email, *input.FullName, *input.Password)
	if err != nil {
		if err.Error() == constants.ErrEmailRegistered {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrEmailRegistered})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(newUser))
}

// Token OAuth2パスワードグラント形式でトークンを発行する
func (c *AuthController) Token(ctx *gin.Context) {
	var input dto.TokenInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if err.Error() == constants.ErrIncorrectCredentials {
			ctx.Header("WWW-Authenticate", "Bearer")
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrIncorrectCredentials})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: *token,
		TokenType:   constants.TokenTypeBearer,
	})
}
