package tink

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	telemetryOnce  sync.Once
	opCount        metric.Int64Counter
	opErrors       metric.Int64Counter
	opPayloadBytes metric.Int64Histogram
)

func initTelemetryInstruments() {
	telemetryOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("github.com/tahasabih/tink")

		var err error
		if opCount, err = meter.Int64Counter(
			"tink_operations_total",
			metric.WithDescription("Total encrypt/decrypt operations"),
		); err != nil {
			return
		}

		if opErrors, err = meter.Int64Counter(
			"tink_operation_errors_total",
			metric.WithDescription("Failed encrypt/decrypt operations"),
		); err != nil {
			return
		}

		if opPayloadBytes, err = meter.Int64Histogram(
			"tink_operation_payload_bytes",
			metric.WithUnit("By"),
			metric.WithDescription("Payload sizes of encrypt/decrypt operations"),
		); err != nil {
			return
		}
	})
}

// RecordOperation counts one primitive operation. Only the operation name,
// payload size and success/failure are recorded; no key or payload content
// leaves the process.
func RecordOperation(op string, payloadBytes int, err error) {
	initTelemetryInstruments()
	ctx := context.Background()
	attrs := []attribute.KeyValue{
		attribute.String("operation", op),
	}
	if opCount != nil {
		opCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
	if opPayloadBytes != nil {
		opPayloadBytes.Record(ctx, int64(payloadBytes), metric.WithAttributes(attrs...))
	}
	if err != nil && opErrors != nil {
		opErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
