package ports

import "context"

// Logger - логгер сервисов и транспорта. Реализация дописывает к записи
// request_id и trace_id из ctx, поэтому ctx передаётся всегда, даже context.Background().
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
