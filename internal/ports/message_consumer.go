package ports

import "context"

// MessageConsumer - фоновый приёмник событий (приёмки со складских сканеров).
// Run блокируется до отмены ctx или фатальной ошибки; Close идемпотентен.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
