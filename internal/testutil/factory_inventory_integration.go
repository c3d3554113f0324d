//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"time"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeSupplier - валидный поставщик с NIT и уникальным номером.
func MakeSupplier(opts ...func(*domain.Supplier)) domain.Supplier {
	email := "compras-" + UniqSuffix() + "@example.co"
	s := domain.Supplier{
		IDType:           domain.IDTypeNIT,
		IDNumber:         fmt.Sprintf("%09d-%d", mrand.Intn(1_000_000_000), mrand.Intn(10)),
		Name:             "Droguería " + UniqSuffix(),
		Email:            &email,
		EconomicActivity: domain.ActivityCodes{"4645", "4773"},
		Status:           domain.StatusActive,
	}
	for _, fn := range opts {
		fn(&s)
	}
	return s
}

// MakeProduct - валидная активная позиция каталога.
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	lab := "Genfar"
	p := domain.Product{
		Code:       "MED-" + UniqSuffix(),
		Name:       "Acetaminofén " + UniqSuffix(),
		Laboratory: &lab,
		Status:     domain.StatusActive,
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

// MakeReception - приёмка для уже сохранённых товара и поставщика.
func MakeReception(productID, supplierID string, opts ...func(*domain.Reception)) domain.Reception {
	now := time.Now().UTC().Truncate(time.Second)
	expires := now.AddDate(1, 0, 0)
	batch := "L-" + UniqSuffix()
	r := domain.Reception{
		ReceptionDate:     now.Add(-time.Hour),
		ProductID:         productID,
		SupplierID:        supplierID,
		InvoiceNumber:     "FAC-" + UniqSuffix(),
		Quantity:          10,
		BatchNumber:       &batch,
		ExpirationDate:    &expires,
		PresentationState: domain.PresentationGood,
	}
	for _, fn := range opts {
		fn(&r)
	}
	return r
}

func WithSupplierName(name string) func(*domain.Supplier) {
	return func(s *domain.Supplier) { s.Name = name }
}

func WithProductStatus(st domain.Status) func(*domain.Product) {
	return func(p *domain.Product) { p.Status = st }
}

func WithProductName(name string) func(*domain.Product) {
	return func(p *domain.Product) { p.Name = name }
}

func WithPresentation(state domain.PresentationState) func(*domain.Reception) {
	return func(r *domain.Reception) { r.PresentationState = state }
}
