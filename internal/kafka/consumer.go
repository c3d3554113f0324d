package kafka

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/pharma_inventory/internal/ports"
	"github.com/Gunvolt24/pharma_inventory/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

//go:generate mockgen -source=consumer.go -destination=./mocks/mock_consumer.go -package=mocks

// reader - минимальный контракт над kafka.Reader, подменяется моком в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// receptionIngester - usecase, который разбирает событие приёмки, валидирует и сохраняет его.
type receptionIngester interface {
	IngestMessage(ctx context.Context, raw []byte) error
}

// Consumer читает события приёмки от складских сканеров.
type Consumer struct {
	reader         reader
	ingester       receptionIngester
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer - конструктор; ошибка, если в конфиге нет брокеров, топика или группы.
func NewConsumer(cfg *ConsumerConfig, ingester receptionIngester, log ports.Logger) (*Consumer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg.withDefaults(), ingester, log), nil
}

func newConsumer(r reader, cfg ConsumerConfig, ingester receptionIngester, log ports.Logger) *Consumer {
	return &Consumer{
		reader:         r,
		ingester:       ingester,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		retryInitial:   cfg.RetryInitial,
		retryMax:       cfg.RetryMax,
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run - основной цикл до отмены ctx:
// 1) FetchMessage без авто-коммита;
// 2) приёмка сохранена → коммит;
// 3) событие отвергнуто навсегда (валидация, неизвестный товар/поставщик) → лог и коммит;
// 4) временная ошибка → то же сообщение обрабатывается повторно с backoff, пока не пройдёт
// или не будет отменён ctx (FetchMessage группы не отдаёт незакоммиченное сообщение повторно).
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "reception consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", err, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.process(ctx, rc.Topic, &msg); err != nil {
			return err
		}
	}
}

// process доводит сообщение до сохранения или окончательного отказа и коммитит его.
// Ошибка - только отмена ctx: сообщение остаётся незакоммиченным и придёт после рестарта.
func (c *Consumer) process(ctx context.Context, topic string, msg *kafka.Message) error {
	backoff := c.retryInitial
	for c.handleMessage(ctx, topic, msg) == outcomeRetry {
		sleep := c.withJitterEqual(backoff)
		c.log.Warnf(ctx, "reception event partition=%d offset=%d: retrying in %s", msg.Partition, msg.Offset, sleep)
		if !c.sleepWithBackoff(ctx, sleep) {
			return ctx.Err()
		}
		backoff = c.nextBackoff(backoff)
	}

	if err := c.commit(ctx, msg); err != nil {
		c.log.Warnf(ctx, "%v", err)
	}
	return nil
}

// Close закрывает reader; повторные вызовы ничего не делают.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}

func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) error {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		return fmt.Errorf("commit partition=%d offset=%d: %w", msg.Partition, msg.Offset, err)
	}
	return nil
}
