package validate_test

import (
	"context"
	"slices"
	"testing"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/pkg/validate"
)

func TestProductValidator_ValidateCreate(t *testing.T) {
	v := validate.NewProductValidator()
	ctx := context.Background()

	cases := []struct {
		name string
		in   *domain.ProductCreate
		want []string
	}{
		{
			name: "valid",
			in:   &domain.ProductCreate{Code: "MED-001", Name: "Acetaminofén 500mg", Laboratory: "Genfar"},
			want: []string{},
		},
		{
			name: "short code and name",
			in:   &domain.ProductCreate{Code: "ME", Name: "A"},
			want: []string{"El código debe tener al menos 3 caracteres", "El nombre debe tener al menos 2 caracteres"},
		},
		{
			name: "missing code",
			in:   &domain.ProductCreate{Name: "Acetaminofén"},
			want: []string{"Código del producto es requerido"},
		},
		{
			name: "missing both",
			in:   &domain.ProductCreate{},
			want: []string{"Código del producto es requerido", "Nombre del producto es requerido"},
		},
		{
			name: "nil",
			in:   nil,
			want: []string{"Código del producto es requerido", "Nombre del producto es requerido"},
		},
		{
			name: "length counts characters not bytes",
			in:   &domain.ProductCreate{Code: "ÁÉÍ", Name: "Ñu"},
			want: []string{},
		},
		{
			name: "boundary lengths",
			in:   &domain.ProductCreate{Code: "ABC", Name: "AB"},
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := v.ValidateCreate(ctx, tc.in)
			if !slices.Equal(res.Errors, tc.want) {
				t.Fatalf("errors mismatch:\n got: %q\nwant: %q", res.Errors, tc.want)
			}
			if res.IsValid != (len(tc.want) == 0) {
				t.Fatalf("IsValid=%v inconsistent with errors %q", res.IsValid, res.Errors)
			}
		})
	}
}

func TestProductValidator_ValidateUpdate(t *testing.T) {
	v := validate.NewProductValidator()
	ctx := context.Background()

	t.Run("empty patch", func(t *testing.T) {
		if res := v.ValidateUpdate(ctx, &domain.ProductUpdate{}); !res.IsValid {
			t.Fatalf("expected valid, got %v", res.Errors)
		}
	})

	t.Run("only provided fields are checked", func(t *testing.T) {
		res := v.ValidateUpdate(ctx, &domain.ProductUpdate{Name: strPtr("X")})
		want := []string{"El nombre debe tener al menos 2 caracteres"}
		if !slices.Equal(res.Errors, want) {
			t.Fatalf("got %q, want %q", res.Errors, want)
		}
	})

	t.Run("provided empty code is too short", func(t *testing.T) {
		res := v.ValidateUpdate(ctx, &domain.ProductUpdate{Code: strPtr("")})
		want := []string{"El código debe tener al menos 3 caracteres"}
		if !slices.Equal(res.Errors, want) {
			t.Fatalf("got %q, want %q", res.Errors, want)
		}
	})

	t.Run("status change only", func(t *testing.T) {
		st := domain.StatusInactive
		if res := v.ValidateUpdate(ctx, &domain.ProductUpdate{Status: &st}); !res.IsValid {
			t.Fatalf("expected valid, got %v", res.Errors)
		}
	})
}
