package domain

import (
	"strings"
	"time"
)

// Supplier - поставщик в том виде, в каком его хранит и отдаёт хранилище.
type Supplier struct {
	ID               string        `json:"id"`
	IDType           IDType        `json:"id_type"`
	IDNumber         string        `json:"id_number"`
	Name             string        `json:"name"`
	Address          *string       `json:"address,omitempty"`
	Phone            *string       `json:"phone,omitempty"`
	Email            *string       `json:"email,omitempty"`
	ContactPerson    *string       `json:"contact_person,omitempty"`
	EconomicActivity ActivityCodes `json:"economic_activity"`
	Status           Status        `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// SupplierCreate - кандидат на создание. Статус не принимается: новый поставщик всегда active.
type SupplierCreate struct {
	IDType           IDType        `json:"id_type" csv:"id_type" binding:"omitempty,oneof=CC NIT CE PP"`
	IDNumber         string        `json:"id_number" csv:"id_number"`
	Name             string        `json:"name" csv:"name"`
	Address          string        `json:"address,omitempty" csv:"address"`
	Phone            string        `json:"phone,omitempty" csv:"phone"`
	Email            string        `json:"email,omitempty" csv:"email"`
	ContactPerson    string        `json:"contact_person,omitempty" csv:"contact_person"`
	EconomicActivity ActivityCodes `json:"economic_activity,omitempty" csv:"economic_activity"`
}

// SupplierUpdate - частичное обновление: nil означает «поле не трогать».
// EconomicActivity == nil - не передано; пустой срез очищает список.
type SupplierUpdate struct {
	IDType           *IDType       `json:"id_type,omitempty" binding:"omitempty,oneof=CC NIT CE PP"`
	IDNumber         *string       `json:"id_number,omitempty"`
	Name             *string       `json:"name,omitempty"`
	Address          *string       `json:"address,omitempty"`
	Phone            *string       `json:"phone,omitempty"`
	Email            *string       `json:"email,omitempty"`
	ContactPerson    *string       `json:"contact_person,omitempty"`
	EconomicActivity ActivityCodes `json:"economic_activity,omitempty"`
	Status           *Status       `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// SupplierFilter - фильтры списка поставщиков (поиск по имени, документу, email и статус).
type SupplierFilter struct {
	Query  string
	Status Status
}

// ActivityCodes - коды экономической деятельности (по 4 цифры).
// В CSV хранятся одной ячейкой через ';'.
type ActivityCodes []string

// UnmarshalCSV - разбор ячейки вида "4645;4773".
func (a *ActivityCodes) UnmarshalCSV(cell string) error {
	codes := ActivityCodes{}
	for _, part := range strings.Split(cell, ";") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	*a = codes
	return nil
}

// MarshalCSV - обратное преобразование для gocsv.
func (a ActivityCodes) MarshalCSV() (string, error) {
	return strings.Join(a, ";"), nil
}

// Dedup - убирает повторы, сохраняя порядок первого вхождения. nil остаётся nil.
func (a ActivityCodes) Dedup() ActivityCodes {
	if a == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(a))
	out := make(ActivityCodes, 0, len(a))
	for _, code := range a {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
