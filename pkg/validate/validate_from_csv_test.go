package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
)

func TestValidateCSVStream_Suppliers(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntitySupplier, Mode: ModeCreate}

	input := strings.Join([]string{
		"id_type,id_number,name,email,economic_activity",
		"NIT,900123456-1,Droguería Central,compras@central.co,4645;4773",
		"NIT,900123456,Sin Digito,,4645",
		"CC,1020304050,Farmacia Norte,,46A5; 12",
	}, "\n") + "\n"

	var out, rejected bytes.Buffer
	res, err := ValidateCSVStream(ctx, testValidators(), target, strings.NewReader(input), &out, &rejected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 2 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	var s domain.SupplierCreate
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &s); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if s.Name != "Droguería Central" || len(s.EconomicActivity) != 2 || s.EconomicActivity[1] != "4773" {
		t.Fatalf("unexpected supplier: %+v", s)
	}

	report := rejected.String()
	for _, want := range []string{
		"line 3: ", msgNITInvalid,
		"line 4: ", "Código de actividad económica inválido: 46A5", "Código de actividad económica inválido: 12",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report %q does not contain %q", report, want)
		}
	}
}

func TestValidateCSVStream_Receptions(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntityReception, Mode: ModeCreate}

	input := "reception_date,product_id,supplier_id,invoice_number,quantity,expiration_date,presentation_state\n" +
		"2024-06-01,p-1,s-1,FAC-1,12,2025-06-01,bueno\n" +
		"2024-06-01,p-1,s-1,FAC-2,-1,2025-06-01,malo\n"

	var out bytes.Buffer
	res, err := ValidateCSVStream(ctx, testValidators(), target, strings.NewReader(input), &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
}

func TestValidateCSVStream_BadNumber(t *testing.T) {
	target := Target{Entity: EntityReception, Mode: ModeCreate}
	input := "quantity\nmany\n"

	var out bytes.Buffer
	_, err := ValidateCSVStream(context.Background(), testValidators(), target, strings.NewReader(input), &out, nil)
	if err == nil || !strings.Contains(err.Error(), "read csv") {
		t.Fatalf("expected read csv error, got: %v", err)
	}
}
