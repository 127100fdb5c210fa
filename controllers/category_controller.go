package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-api/constants"
	"grocery-api/dto"
	"grocery-api/services"
)

type ICategoryController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type CategoryController struct {
	service services.ICategoryService
}

func NewCategoryController(service services.ICategoryService) ICategoryController {
	return &CategoryController{service: service}
}

func (c *CategoryController) FindAll(ctx *gin.Context) {
	skip, limit, err := paginationParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	categories, err := c.service.FindAll(skip, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCategoryResponses(*categories))
}

func (c *CategoryController) Create(ctx *gin.Context) {
	var input dto.CreateCategoryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	newCategory, err := c.service.Create(input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCategoryResponse(newCategory))
}
