package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"grocery-api/constants"
	"grocery-api/dto"
	"grocery-api/services"
)

type IProductController interface {
	FindAll(ctx *gin.Context)
	FindByCategory(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	skip, limit, err := paginationParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	products, err := c.service.FindAll(skip, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProductResponses(*products))
}

// FindByCategory 存在しないCategoryのIDでもエラーにせず空配列を返す
func (c *ProductController) FindByCategory(ctx *gin.Context) {
	categoryID, err := strconv.ParseUint(ctx.Param("category_id"), 10, 64)
	if err != nil {
		// パスパラメータの型違反もペイロードの検証エラーと同じ422で返す
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": constants.ErrInvalidCategoryID})
		return
	}

	products, err := c.service.FindByCategory(uint(categoryID))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProductResponses(*products))
}

func (c *ProductController) Create(ctx *gin.Context) {
	var input dto.CreateProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	newProduct, err := c.service.Create(input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProductResponse(newProduct))
}
