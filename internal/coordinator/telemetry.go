package coordinator

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/txledger/internal/coordinator"

var tracer = otel.Tracer(instrumentationName)

// instruments groups the coordinator's metrics.
type instruments struct {
	submissions metric.Int64Counter     // submissions by outcome and failed stage
	duration    metric.Float64Histogram // end-to-end submission latency
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	// Instrument creation only fails on invalid names; the global meter
	// still returns usable no-op instruments in that case.
	submissions, _ := meter.Int64Counter(
		"txledger.submissions",
		metric.WithDescription("Number of transfer submissions by outcome."),
	)
	duration, _ := meter.Float64Histogram(
		"txledger.submission.duration",
		metric.WithDescription("Time from submit to inclusion or failure."),
		metric.WithUnit("s"),
	)

	return instruments{
		submissions: submissions,
		duration:    duration,
	}
}

func (i instruments) recordSubmission(ctx context.Context, startedAt time.Time, err error) {
	attrs := []attribute.KeyValue{attribute.String("outcome", "success")}
	if err != nil {
		attrs = []attribute.KeyValue{attribute.String("outcome", "failure")}

		var txErr *TransactionError
		if errors.As(err, &txErr) {
			attrs = append(attrs, attribute.String("stage", txErr.Stage.String()))
		}
	}

	opt := metric.WithAttributes(attrs...)
	i.submissions.Add(ctx, 1, opt)
	i.duration.Record(ctx, time.Since(startedAt).Seconds(), opt)
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
