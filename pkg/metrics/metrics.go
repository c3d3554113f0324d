package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	KafkaMessagesSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_skipped_total",
			Help: "Number of rejected messages committed without saving",
		},
		[]string{"topic"},
	)
)

var (
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_validation_failures_total",
			Help: "Candidates rejected by validation",
		},
		[]string{"entity", "mode"}, // supplier|product|reception, create|update
	)
	RecordsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_records_written_total",
			Help: "Records written to the store",
		},
		[]string{"entity", "op"}, // create|update|delete
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует метрики в registry по умолчанию; повторный вызов ничего не делает.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesSkipped,
			ValidationFailures, RecordsWritten, HTTPRequestDuration,
		)
	})
}
