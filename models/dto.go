package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Address   string `json:"address" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock"`
	CategoryID  *int            `json:"category_id"`
}

type UpdateProductRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *int             `json:"category_id"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PlaceOrderRequest struct {
	Items []PlaceOrderItem `json:"items" binding:"required"`
}

type PlaceOrderItem struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}
