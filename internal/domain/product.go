package domain

import "time"

// Product - позиция каталога.
type Product struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Laboratory  *string   `json:"laboratory,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductCreate - кандидат на создание (статус всегда active).
type ProductCreate struct {
	Code        string `json:"code" csv:"code"`
	Name        string `json:"name" csv:"name"`
	Description string `json:"description,omitempty" csv:"description"`
	Laboratory  string `json:"laboratory,omitempty" csv:"laboratory"`
}

// ProductUpdate - частичное обновление.
type ProductUpdate struct {
	Code        *string `json:"code,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Laboratory  *string `json:"laboratory,omitempty"`
	Status      *Status `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// ProductFilter - поиск по названию, коду, лаборатории и статус.
type ProductFilter struct {
	Query  string
	Status Status
}
