// Пакет ctxmeta - метаданные запроса, которые едут через context.Context:
// request_id из HTTP-слоя и trace/span активного спана OpenTelemetry.
// HTTP-слой и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

// KeyRequestID - ключ request_id в контексте.
const KeyRequestID ctxKey = "request_id"

// WithRequestID кладёт request_id в контекст (если пусто - ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// Fields - все известные метаданные парами ключ/значение, для структурного логгера.
func Fields(ctx context.Context) []any {
	var out []any
	if rid, ok := RequestIDFromContext(ctx); ok {
		out = append(out, "request_id", rid)
	}
	if tid, ok := TraceIDFromContext(ctx); ok {
		out = append(out, "trace_id", tid)
	}
	if sid, ok := SpanIDFromContext(ctx); ok {
		out = append(out, "span_id", sid)
	}
	return out
}
