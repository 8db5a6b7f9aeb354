package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MindOfAhmed/DigitalSociety"

// StartDetectorSpan starts a span around a face-detection provider call.
func StartDetectorSpan(ctx context.Context, provider string, imageBytes int) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "photo.detect",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("detector.provider", provider),
			attribute.Int("image.bytes", imageBytes),
		),
	)
}

// StartWorkflowSpan starts a span for one workflow operation
// (workflow "renewal", operation "submit").
func StartWorkflowSpan(ctx context.Context, workflow, operation string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, workflow+"."+operation,
		trace.WithAttributes(
			attribute.String("workflow.name", workflow),
			attribute.String("workflow.operation", operation),
		),
	)
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
