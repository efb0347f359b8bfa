package otelhelper

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const ErrorKindKey = "flarenode.error.kind"

// SetError marks the span as failed and records err.
func SetError(span trace.Span, err error, attrs ...attribute.KeyValue) {
	span.RecordError(err, trace.WithAttributes(attrs...))
	span.SetStatus(codes.Error, err.Error())
}

// RecordItemError records a failure that was captured into an item's output
// instead of failing the batch. The span status is left untouched.
func RecordItemError(span trace.Span, index int, kind string, err error) {
	span.AddEvent("item_failed", trace.WithAttributes(
		attribute.Int(ItemIndexKey, index),
		attribute.String(ErrorKindKey, kind),
		attribute.String("error.message", err.Error()),
	))
}
