package validate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/gocarina/gocsv"
)

// ErrCSVUpdateUnsupported - CSV не различает «поле не передано» и «пустое поле», поэтому только create.
var ErrCSVUpdateUnsupported = errors.New("csv input supports create payloads only")

// ValidateCSVStream - CSV с заголовком (имена колонок как в JSON). Номер строки в отчёте
// считается с учётом заголовка: первая запись - строка 2.
func ValidateCSVStream(ctx context.Context, vs *Validators, target Target, ir io.Reader, ow, ew io.Writer) (StreamResult, error) {
	var res StreamResult
	if target.Mode != ModeCreate {
		return res, ErrCSVUpdateUnsupported
	}

	candidates, err := readCSVCandidates(target.Entity, ir)
	if err != nil {
		return res, err
	}

	for i, candidate := range candidates {
		record, err := checkCandidate(ctx, vs, candidate)
		if err != nil {
			res.InvalidLinesCount++
			reportRejected(ew, i+2, err)
			continue
		}
		if err := writeRecord(ow, record); err != nil {
			return res, err
		}
		res.ValidLinesCount++
	}
	return res, nil
}

func readCSVCandidates(entity Entity, ir io.Reader) ([]any, error) {
	switch entity {
	case EntitySupplier:
		var rows []*domain.SupplierCreate
		if err := gocsv.Unmarshal(ir, &rows); err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return toAny(rows), nil
	case EntityProduct:
		var rows []*domain.ProductCreate
		if err := gocsv.Unmarshal(ir, &rows); err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return toAny(rows), nil
	case EntityReception:
		var rows []*domain.ReceptionCreate
		if err := gocsv.Unmarshal(ir, &rows); err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return toAny(rows), nil
	default:
		return nil, fmt.Errorf("unknown entity: %q", entity)
	}
}

func toAny[T any](rows []*T) []any {
	out := make([]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, r)
	}
	return out
}
