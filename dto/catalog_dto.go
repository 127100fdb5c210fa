package dto

import "grocery-api/models"

// 作成ビューの必須チェックは「キーが存在するか」のみ
// price: 0 や空文字も有効な値として受け付けるためポインタで受ける
type CreateCategoryInput struct {
	Name *string `json:"name" binding:"required"`
}

type CreateProductInput struct {
	Name       *string  `json:"name" binding:"required"`
	Price      *float64 `json:"price" binding:"required"`
	Image      *string  `json:"image" binding:"required"`
	Unit       *string  `json:"unit" binding:"required"`
	CategoryID *uint    `json:"category_id" binding:"required"`
}

type ProductResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Unit       string  `json:"unit"`
	CategoryID uint    `json:"category_id"`
}

// CategoryResponse 読み取りビューは所属するProductをネストして返す
// Productが無い場合もnullではなく空配列を返す
type CategoryResponse struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

func NewProductResponse(product *models.Product) ProductResponse {
	return ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Image:      product.Image,
		Unit:       product.Unit,
		CategoryID: product.CategoryID,
	}
}

func NewProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductResponse(&products[i]))
	}
	return responses
}

func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Products: NewProductResponses(category.Products),
	}
}

func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, NewCategoryResponse(&categories[i]))
	}
	return responses
}
