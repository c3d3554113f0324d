package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

type outcome int

const (
	outcomeSaved   outcome = iota // сохранено, коммитим
	outcomeSkipped                // отвергнуто навсегда, коммитим
	outcomeRetry                  // временная ошибка, повтор того же сообщения
)

// handleMessage передаёт событие в usecase с таймаутом и классифицирует результат.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) outcome {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.ingester.IngestMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return outcomeSaved
	case isPermanent(err):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		metrics.KafkaMessagesSkipped.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "reception event skipped partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		return outcomeSkipped
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Errorf(ctx, "reception event failed partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		return outcomeRetry
	}
}

// isPermanent - повтор не поможет: данные невалидны (в том числе нарушают ограничения схемы)
// или ссылаются на несуществующие записи.
func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrReferenceNotFound)
}

// sleepWithBackoff ждёт d; false, если ctx отменён раньше.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff удваивает задержку, не выходя за retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	return min(current*2, c.retryMax)
}

// withJitterEqual - половина задержки фиксирована, вторая половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(c.jitterRand.Int63n(int64(d-half)+1))
}
