package validate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntitySupplier, Mode: ModeCreate}

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(supplierJSON("900123456-1", "u@e.com")), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, testValidators(), target, path, FormatAuto, &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected non-empty output")
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntitySupplier, Mode: ModeCreate}

	dir := t.TempDir()
	path := filepath.Join(dir, "list.jsonl")
	content := oneLineJSON(supplierJSON("900123456-1", "u1@e.com")) + "\n" +
		oneLineJSON(supplierJSON("900123456-2", "u2@e")) + "\n" + // невалидный email
		oneLineJSON(supplierJSON("900123456-3", "")) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out, rejected bytes.Buffer
	summary, err := ValidateFile(ctx, testValidators(), target, path, FormatAuto, &out, &rejected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
	if !strings.HasPrefix(rejected.String(), "line 2: ") {
		t.Fatalf("unexpected rejected report: %q", rejected.String())
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntitySupplier, Mode: ModeCreate}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	// неизвестное поле
	raw := `{"unknown":1,` + supplierJSON("900123456-1", "u@e.com")[1:]
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, testValidators(), target, path, FormatJSON, &out, nil)
	if err == nil {
		t.Fatalf("expected error for invalid json")
	}
	if summary != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.String() != "" {
		t.Fatalf("output must be empty for invalid single JSON")
	}
}

func TestValidateFile_ExplicitFormat_IgnoresExt(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntityProduct, Mode: ModeCreate}

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	content := oneLineJSON(productJSON("MED-001", "Loratadina")) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, testValidators(), target, path, FormatJSONL, &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_CSV_Auto(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntityProduct, Mode: ModeCreate}

	dir := t.TempDir()
	path := filepath.Join(dir, "products.csv")
	content := "code,name,laboratory\nMED-001,Loratadina,MK\nME,A,\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, testValidators(), target, path, FormatAuto, &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	ctx := context.Background()

	var out bytes.Buffer
	_, err := ValidateFile(ctx, testValidators(), Target{Entity: EntityProduct, Mode: ModeCreate}, "no-such-file.json", FormatAuto, &out, nil)
	if err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	target := Target{Entity: EntityProduct, Mode: ModeCreate}

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	_ = os.WriteFile(path, []byte(productJSON("MED-001", "Loratadina")), 0o600)

	var out bytes.Buffer
	_, err := ValidateFile(ctx, testValidators(), target, path, InputFormat("yaml"), &out, nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got: %v", err)
	}
}

func TestValidateReader_CSVUpdateRejected(t *testing.T) {
	target := Target{Entity: EntityProduct, Mode: ModeUpdate}

	var out bytes.Buffer
	_, err := ValidateReader(context.Background(), testValidators(), target, strings.NewReader("code\nX\n"), FormatCSV, &out, nil)
	if !errors.Is(err, ErrCSVUpdateUnsupported) {
		t.Fatalf("expected ErrCSVUpdateUnsupported, got: %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]InputFormat{
		"a.json":      FormatJSON,
		"a.JSONL":     FormatJSONL,
		"dir/b.csv":   FormatCSV,
		"no-ext":      FormatJSON,
		"stream.ndjs": FormatJSON,
	}
	for path, want := range cases {
		if got := DetectFormat(path); got != want {
			t.Fatalf("DetectFormat(%q) = %s, want %s", path, got, want)
		}
	}
}

// ---- функции для тестирования ----

func oneLineJSON(s string) string { return oneLineJSONL(s) }
