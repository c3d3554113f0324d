package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports/mocks"
	rest "github.com/Gunvolt24/pharma_inventory/internal/transport/http"
)

const (
	supplierID  = "5c2d1f0a-7c1e-4f5b-8a61-9d0c3e2b4a77"
	productID   = "0b8f5f0e-4a7c-4c55-9f38-2f0f7b2a1d10"
	receptionID = "9a1e4c3b-2d5f-4e6a-8b7c-1d2e3f4a5b6c"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type testAPI struct {
	router     *gin.Engine
	suppliers  *mocks.MockSupplierService
	products   *mocks.MockProductService
	receptions *mocks.MockReceptionService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	api := &testAPI{
		suppliers:  mocks.NewMockSupplierService(ctrl),
		products:   mocks.NewMockProductService(ctrl),
		receptions: mocks.NewMockReceptionService(ctrl),
	}
	h := rest.NewHandler(api.suppliers, api.products, api.receptions, noopLogger{}, time.Second)
	api.router = rest.NewRouter(h, "")
	return api
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body=%s", w.Body.String())
	return v
}

func TestPing(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
}

func TestGetSupplier(t *testing.T) {
	api := newTestAPI(t)

	api.suppliers.EXPECT().GetSupplier(gomock.Any(), supplierID).
		Return(&domain.Supplier{ID: supplierID, Name: "Droguería Central", EconomicActivity: domain.ActivityCodes{"4645"}}, nil)

	w := api.do(http.MethodGet, "/suppliers/"+supplierID, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.Supplier](t, w)
	require.Equal(t, "Droguería Central", got.Name)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetSupplier_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.suppliers.EXPECT().GetSupplier(gomock.Any(), supplierID).Return(nil, nil)

	w := api.do(http.MethodGet, "/suppliers/"+supplierID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByID_NonUUID_BadRequest(t *testing.T) {
	api := newTestAPI(t)

	// ни один сервис не вызывается: mocks без ожиданий уронят тест на лишнем вызове
	for _, path := range []string{"/suppliers/42", "/products/abc", "/receptions/not-a-uuid"} {
		w := api.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	w := api.do(http.MethodDelete, "/products/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSuppliers_Filters(t *testing.T) {
	api := newTestAPI(t)

	api.suppliers.EXPECT().
		ListSuppliers(gomock.Any(), domain.SupplierFilter{Query: "andina", Status: domain.StatusInactive}).
		Return(nil, nil)

	w := api.do(http.MethodGet, "/suppliers?q=%20andina%20&status=INACTIVE", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestListSuppliers_BadStatus(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodGet, "/suppliers?status=deleted", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSupplier(t *testing.T) {
	api := newTestAPI(t)

	api.suppliers.EXPECT().CreateSupplier(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *domain.SupplierCreate) (*domain.Supplier, error) {
			require.Equal(t, domain.IDTypeNIT, in.IDType)
			require.Equal(t, domain.ActivityCodes{"4645", "4645"}, in.EconomicActivity)
			return &domain.Supplier{ID: supplierID, IDType: in.IDType, Name: in.Name, Status: domain.StatusActive}, nil
		})

	w := api.do(http.MethodPost, "/suppliers",
		`{"id_type":"NIT","id_number":"900123456-1","name":"Droguería Central","economic_activity":["4645","4645"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	got := decode[domain.Supplier](t, w)
	require.Equal(t, supplierID, got.ID)
	require.Equal(t, domain.StatusActive, got.Status)
}

func TestCreateSupplier_ValidationError(t *testing.T) {
	api := newTestAPI(t)

	api.suppliers.EXPECT().CreateSupplier(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("create supplier: %w", &domain.ValidationError{
			Messages: []string{"Formato de NIT inválido"},
		}))

	w := api.do(http.MethodPost, "/suppliers", `{"id_type":"NIT","id_number":"900123456","name":"X Y"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.JSONEq(t, `{"errors":["Formato de NIT inválido"]}`, w.Body.String())
}

func TestCreateSupplier_BindingErrors(t *testing.T) {
	api := newTestAPI(t)

	cases := []struct {
		name     string
		body     string
		contains string
	}{
		{name: "bad enum", body: `{"id_type":"RUT","id_number":"1","name":"X"}`, contains: "id_type must be one of [CC, NIT, CE, PP]"},
		{name: "malformed json", body: `{"id_type":`, contains: "error"},
		{name: "wrong type", body: `{"economic_activity":"4645"}`, contains: "economic_activity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/suppliers", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, w.Body.String(), tc.contains)
		})
	}

	w := api.do(http.MethodPost, "/suppliers", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateSupplier_DryRun(t *testing.T) {
	api := newTestAPI(t)

	api.suppliers.EXPECT().ValidateSupplier(gomock.Any(), gomock.Any()).
		Return(domain.NewValidationResult([]string{"Nombre del proveedor es requerido"}))

	w := api.do(http.MethodPost, "/suppliers/validate", `{"id_type":"CC","id_number":"1020304050"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"isValid":false,"errors":["Nombre del proveedor es requerido"]}`, w.Body.String())
}

func TestUpdateSupplier_ClearEmail(t *testing.T) {
	api := newTestAPI(t)

	api.suppliers.EXPECT().UpdateSupplier(gomock.Any(), supplierID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in *domain.SupplierUpdate) (*domain.Supplier, error) {
			require.NotNil(t, in.Email)
			require.Empty(t, *in.Email)
			require.Nil(t, in.Name)
			return &domain.Supplier{ID: supplierID}, nil
		})

	w := api.do(http.MethodPatch, "/suppliers/"+supplierID, `{"email":""}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestUpdateSupplier_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.suppliers.EXPECT().UpdateSupplier(gomock.Any(), supplierID, gomock.Any()).
		Return(nil, fmt.Errorf("update supplier: %w", domain.ErrNotFound))

	w := api.do(http.MethodPatch, "/suppliers/"+supplierID, `{"name":"Nuevo"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSupplier(t *testing.T) {
	api := newTestAPI(t)

	gomock.InOrder(
		api.suppliers.EXPECT().DeleteSupplier(gomock.Any(), supplierID).Return(nil),
		api.suppliers.EXPECT().DeleteSupplier(gomock.Any(), supplierID).Return(fmt.Errorf("delete: %w", domain.ErrInUse)),
		api.suppliers.EXPECT().DeleteSupplier(gomock.Any(), supplierID).Return(errors.New("conn refused")),
	)

	require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/suppliers/"+supplierID, "").Code)
	require.Equal(t, http.StatusConflict, api.do(http.MethodDelete, "/suppliers/"+supplierID, "").Code)

	w := api.do(http.MethodDelete, "/suppliers/"+supplierID, "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "conn refused")
}

func TestListActiveProducts(t *testing.T) {
	api := newTestAPI(t)

	api.products.EXPECT().ListActiveProducts(gomock.Any()).Return([]*domain.Product{
		{ID: productID, Name: "Amoxicilina", Status: domain.StatusActive},
	}, nil)

	w := api.do(http.MethodGet, "/products/active", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]domain.Product](t, w)
	require.Len(t, got, 1)
	require.Equal(t, "Amoxicilina", got[0].Name)
}

func TestCreateProduct(t *testing.T) {
	api := newTestAPI(t)

	api.products.EXPECT().CreateProduct(gomock.Any(), &domain.ProductCreate{Code: "MED-001", Name: "Loratadina"}).
		Return(&domain.Product{ID: productID, Code: "MED-001", Name: "Loratadina", Status: domain.StatusActive}, nil)

	w := api.do(http.MethodPost, "/products", `{"code":"MED-001","name":"Loratadina"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateProduct_BadStatus(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPatch, "/products/"+productID, `{"status":"archived"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "status must be one of [active, inactive]")
}

func TestProductService_Timeout(t *testing.T) {
	api := newTestAPI(t)

	api.products.EXPECT().ListProducts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.ProductFilter) ([]*domain.Product, error) {
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)
			return nil, fmt.Errorf("select products: %w", context.DeadlineExceeded)
		})

	w := api.do(http.MethodGet, "/products", "")
	require.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestListReceptions(t *testing.T) {
	api := newTestAPI(t)

	api.receptions.EXPECT().
		ListReceptions(gomock.Any(), domain.ReceptionFilter{Query: "FAC-1", State: domain.PresentationBad}).
		Return([]*domain.Reception{{
			ID:       receptionID,
			Quantity: 3,
			Product:  &domain.Product{ID: productID, Name: "Loratadina"},
			Supplier: &domain.Supplier{ID: supplierID, Name: "Droguería Central"},
		}}, nil)

	w := api.do(http.MethodGet, "/receptions?q=FAC-1&state=malo", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]domain.Reception](t, w)
	require.Len(t, got, 1)
	require.Equal(t, "Loratadina", got[0].Product.Name)
	require.Equal(t, "Droguería Central", got[0].Supplier.Name)

	w = api.do(http.MethodGet, "/receptions?state=roto", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReception_MissingReference(t *testing.T) {
	api := newTestAPI(t)

	api.receptions.EXPECT().CreateReception(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("insert reception: %w", domain.ErrReferenceNotFound))

	w := api.do(http.MethodPost, "/receptions", `{
		"reception_date":"2024-06-01T08:00","product_id":"`+productID+`","supplier_id":"`+supplierID+`",
		"invoice_number":"FAC-1","quantity":5,"presentation_state":"bueno"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateReception_BadPresentationState(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/receptions", `{"presentation_state":"excelente"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "presentation_state")
}

func TestUpdateReception_ClearExpiration(t *testing.T) {
	api := newTestAPI(t)

	api.receptions.EXPECT().UpdateReception(gomock.Any(), receptionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in *domain.ReceptionUpdate) (*domain.Reception, error) {
			require.NotNil(t, in.ExpirationDate)
			require.Empty(t, *in.ExpirationDate)
			return &domain.Reception{ID: receptionID}, nil
		})

	w := api.do(http.MethodPatch, "/receptions/"+receptionID, `{"expiration_date":""}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestValidateReception_DryRun(t *testing.T) {
	api := newTestAPI(t)

	api.receptions.EXPECT().ValidateReception(gomock.Any(), gomock.Any()).
		Return(domain.NewValidationResult(nil))

	w := api.do(http.MethodPost, "/receptions/validate", `{"quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"isValid":true,"errors":[]}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodGet, "/orders/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodPut, "/suppliers/"+supplierID, `{}`)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.JSONEq(t, `{"error":"method not allowed"}`, w.Body.String())
}
