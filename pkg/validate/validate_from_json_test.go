package validate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testValidators() *Validators {
	return NewValidators(WithClock(func() time.Time { return testNow }))
}

func TestValidateRecordFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntitySupplier, Mode: ModeCreate}

	rec, err := ValidateRecordFromJSON(ctx, testValidators(), target, []byte(supplierJSON("900123456-1", "a@b.co")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := rec.(*domain.SupplierCreate)
	if !ok {
		t.Fatalf("unexpected record type %T", rec)
	}
	if s.IDNumber != "900123456-1" || len(s.EconomicActivity) != 2 {
		t.Fatalf("unexpected supplier: %+v", s)
	}
}

func TestValidateRecordFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntitySupplier, Mode: ModeCreate}

	raw := `{"unknown":"x",` + supplierJSON("900123456-1", "a@b.co")[1:]
	_, err := ValidateRecordFromJSON(ctx, testValidators(), target, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestValidateRecordFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntityProduct, Mode: ModeCreate}

	raw := productJSON("MED-001", "Ibuprofeno") + "{}"
	_, err := ValidateRecordFromJSON(ctx, testValidators(), target, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateRecordFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntitySupplier, Mode: ModeCreate}

	_, err := ValidateRecordFromJSON(ctx, testValidators(), target, []byte(supplierJSON("900123456", "a@b.co")))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || len(vErr.Messages) != 1 || vErr.Messages[0] != msgNITInvalid {
		t.Fatalf("unexpected validation messages: %v", err)
	}
}

func TestValidateRecordFromJSON_UpdateMode(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntityReception, Mode: ModeUpdate}

	rec, err := ValidateRecordFromJSON(ctx, testValidators(), target, []byte(`{"quantity":5,"notes":"ok"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := rec.(*domain.ReceptionUpdate)
	if u.Quantity == nil || *u.Quantity != 5 || u.InvoiceNumber != nil {
		t.Fatalf("unexpected patch: %+v", u)
	}

	_, err = ValidateRecordFromJSON(ctx, testValidators(), target, []byte(`{"quantity":0}`))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}

func TestValidateRecordFromJSON_EnumOutOfRange(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		target Target
		raw    string
		want   string
	}{
		{
			name:   "presentation_state",
			target: Target{Entity: EntityReception, Mode: ModeCreate},
			raw:    strings.Replace(receptionJSON("10", "2026-01-01"), `"bueno"`, `"excelente"`, 1),
			want:   "presentation_state must be one of [bueno, regular, malo]",
		},
		{
			name:   "id_type",
			target: Target{Entity: EntitySupplier, Mode: ModeCreate},
			raw:    strings.Replace(supplierJSON("900123456-1", "a@b.co"), `"NIT"`, `"XX"`, 1),
			want:   "id_type must be one of [CC, NIT, CE, PP]",
		},
		{
			name:   "presentation_state on update",
			target: Target{Entity: EntityReception, Mode: ModeUpdate},
			raw:    `{"presentation_state":"roto"}`,
			want:   "presentation_state must be one of [bueno, regular, malo]",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateRecordFromJSON(ctx, testValidators(), tc.target, []byte(tc.raw))
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got: %v", err)
			}
			found := false
			for _, m := range vErr.Messages {
				if m == tc.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("message %q not in %v", tc.want, vErr.Messages)
			}
		})
	}
}

func TestParseTarget(t *testing.T) {
	cases := []struct {
		entity, mode string
		want         Target
		wantErr      bool
	}{
		{entity: "supplier", mode: "", want: Target{EntitySupplier, ModeCreate}},
		{entity: " Product ", mode: "UPDATE", want: Target{EntityProduct, ModeUpdate}},
		{entity: "reception", mode: "create", want: Target{EntityReception, ModeCreate}},
		{entity: "order", mode: "create", wantErr: true},
		{entity: "supplier", mode: "delete", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseTarget(tc.entity, tc.mode)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseTarget(%q,%q): expected error", tc.entity, tc.mode)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseTarget(%q,%q) = %v, %v; want %v", tc.entity, tc.mode, got, err, tc.want)
		}
	}
}

func TestValidators_UnsupportedCandidate(t *testing.T) {
	_, err := testValidators().Validate(context.Background(), struct{}{})
	if err == nil || !strings.Contains(err.Error(), "unsupported candidate") {
		t.Fatalf("expected unsupported candidate error, got: %v", err)
	}
}

// ---- helpers ----

func supplierJSON(idNumber, email string) string {
	return `{
  "id_type": "NIT",
  "id_number": "` + idNumber + `",
  "name": "Droguería Central",
  "email": "` + email + `",
  "economic_activity": ["4645", "4773"]
}`
}

func productJSON(code, name string) string {
	return `{"code":"` + code + `","name":"` + name + `","laboratory":"Genfar"}`
}

func receptionJSON(quantity, expiration string) string {
	return `{
  "reception_date": "2024-06-01T08:00:00Z",
  "product_id": "0b8f5f0e-4a7c-4c55-9f38-2f0f7b2a1d10",
  "supplier_id": "5c2d1f0a-7c1e-4f5b-8a61-9d0c3e2b4a77",
  "invoice_number": "FAC-1",
  "quantity": ` + quantity + `,
  "expiration_date": "` + expiration + `",
  "presentation_state": "bueno"
}`
}
