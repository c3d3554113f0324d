package domain

import "time"

// Reception - факт приёмки партии товара от поставщика.
// Product и Supplier заполняются хранилищем при чтении (join) и не принадлежат приёмке.
type Reception struct {
	ID                 string            `json:"id"`
	ReceptionDate      time.Time         `json:"reception_date"`
	ProductID          string            `json:"product_id"`
	SupplierID         string            `json:"supplier_id"`
	InvoiceNumber      string            `json:"invoice_number"`
	Quantity           int               `json:"quantity"`
	BatchNumber        *string           `json:"batch_number,omitempty"`
	InvimaRegistration *string           `json:"invima_registration,omitempty"`
	ExpirationDate     *time.Time        `json:"expiration_date,omitempty"`
	PresentationState  PresentationState `json:"presentation_state"`
	Notes              *string           `json:"notes,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`

	Product  *Product  `json:"product,omitempty"`
	Supplier *Supplier `json:"supplier,omitempty"`
}

// ReceptionCreate - кандидат на создание. Даты приходят строками из формы
// (datetime-local, date или RFC3339) и разбираются при валидации.
type ReceptionCreate struct {
	ReceptionDate      string            `json:"reception_date" csv:"reception_date"`
	ProductID          string            `json:"product_id" csv:"product_id"`
	SupplierID         string            `json:"supplier_id" csv:"supplier_id"`
	InvoiceNumber      string            `json:"invoice_number" csv:"invoice_number"`
	Quantity           int               `json:"quantity" csv:"quantity"`
	BatchNumber        string            `json:"batch_number,omitempty" csv:"batch_number"`
	InvimaRegistration string            `json:"invima_registration,omitempty" csv:"invima_registration"`
	ExpirationDate     string            `json:"expiration_date,omitempty" csv:"expiration_date"`
	PresentationState  PresentationState `json:"presentation_state" csv:"presentation_state" binding:"omitempty,oneof=bueno regular malo"`
	Notes              string            `json:"notes,omitempty" csv:"notes"`
}

// ReceptionUpdate - частичное обновление. Пустая expiration_date снимает срок годности.
type ReceptionUpdate struct {
	ReceptionDate      *string            `json:"reception_date,omitempty"`
	ProductID          *string            `json:"product_id,omitempty"`
	SupplierID         *string            `json:"supplier_id,omitempty"`
	InvoiceNumber      *string            `json:"invoice_number,omitempty"`
	Quantity           *int               `json:"quantity,omitempty"`
	BatchNumber        *string            `json:"batch_number,omitempty"`
	InvimaRegistration *string            `json:"invima_registration,omitempty"`
	ExpirationDate     *string            `json:"expiration_date,omitempty"`
	PresentationState  *PresentationState `json:"presentation_state,omitempty" binding:"omitempty,oneof=bueno regular malo"`
	Notes              *string            `json:"notes,omitempty"`
}

// ReceptionPatch - провалидированное обновление с разобранными датами, то, что уходит в хранилище.
type ReceptionPatch struct {
	ReceptionDate       *time.Time
	ProductID           *string
	SupplierID          *string
	InvoiceNumber       *string
	Quantity            *int
	BatchNumber         *string
	InvimaRegistration  *string
	ExpirationDate      *time.Time
	ClearExpirationDate bool
	PresentationState   *PresentationState
	Notes               *string
}

// ReceptionFilter - поиск по товару, поставщику, счёту, партии и состояние упаковки.
type ReceptionFilter struct {
	Query string
	State PresentationState
}
