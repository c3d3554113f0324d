package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
)

func TestReferenceErr_Mapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		want     error
		wantMsgs []string
	}{
		{
			name: "foreign key",
			err:  &pgconn.PgError{Code: codeForeignKeyViolation},
			want: domain.ErrReferenceNotFound,
		},
		{
			name: "id is not uuid",
			err:  &pgconn.PgError{Code: codeInvalidTextRepr},
			want: domain.ErrReferenceNotFound,
		},
		{
			name:     "check violation",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "product_receptions_presentation_state_check"}),
			want:     domain.ErrValidation,
			wantMsgs: []string{"value violates constraint product_receptions_presentation_state_check"},
		},
		{
			name:     "not null violation",
			err:      &pgconn.PgError{Code: codeNotNullViolation, ColumnName: "invoice_number"},
			want:     domain.ErrValidation,
			wantMsgs: []string{"invoice_number is required"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := referenceErr("insert reception", tc.err)
			require.ErrorIs(t, got, tc.want)

			if tc.wantMsgs != nil {
				var vErr *domain.ValidationError
				require.True(t, errors.As(got, &vErr))
				assert.Equal(t, tc.wantMsgs, vErr.Messages)
			}
		})
	}
}

func TestWriteErr_TransientStaysTransient(t *testing.T) {
	conn := errors.New("conn reset by peer")
	got := writeErr("insert product", conn)

	require.ErrorIs(t, got, conn)
	assert.NotErrorIs(t, got, domain.ErrValidation)

	deadlock := &pgconn.PgError{Code: "40P01"}
	assert.NotErrorIs(t, writeErr("update supplier", deadlock), domain.ErrValidation)
}

func TestDeleteErr_InUse(t *testing.T) {
	got := deleteErr("delete product", &pgconn.PgError{Code: codeForeignKeyViolation})
	assert.ErrorIs(t, got, domain.ErrInUse)
}
