package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/pharma_inventory/pkg/ctxmeta"
	"github.com/Gunvolt24/pharma_inventory/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// serveWithRequestID прогоняет запрос через middleware и возвращает заголовок ответа и id из контекста.
func serveWithRequestID(t *testing.T, header string) (respID, ctxID string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		ctxID, _ = ctxmeta.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if header != "" {
		req.Header.Set(httpx.HeaderRequestID, header)
	}
	r.ServeHTTP(w, req)
	return w.Header().Get(httpx.HeaderRequestID), ctxID
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	rid, ctxID := serveWithRequestID(t, "")
	if _, err := uuid.Parse(rid); err != nil {
		t.Fatalf("сгенерированный X-Request-ID должен быть UUID, got=%q err=%v", rid, err)
	}
	if ctxID != rid {
		t.Fatalf("request id в контексте должен совпадать с заголовком: ctx=%q header=%q", ctxID, rid)
	}
}

func TestRequestIDMiddleware_UsesProvidedHeader(t *testing.T) {
	const provided = "scanner-42"
	rid, ctxID := serveWithRequestID(t, provided)
	if rid != provided || ctxID != provided {
		t.Fatalf("middleware должен сохранять переданный X-Request-ID: header=%q ctx=%q", rid, ctxID)
	}
}

func TestRequestIDMiddleware_ReplacesUnsafeHeader(t *testing.T) {
	for name, bad := range map[string]string{
		"too long": strings.Repeat("a", 65),
		"spaces":   "id with spaces",
		"unicode":  "pedido-ñ",
	} {
		rid, _ := serveWithRequestID(t, bad)
		if rid == bad {
			t.Fatalf("%s: unsafe id must be replaced", name)
		}
		if _, err := uuid.Parse(rid); err != nil {
			t.Fatalf("%s: replacement must be UUID, got %q", name, rid)
		}
	}
}
