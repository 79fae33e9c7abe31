package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	cmdinternal "github.com/mw/ecsautoscalr/cmd/internal"
	"github.com/mw/ecsautoscalr/internal/tracing"
)

// main runs a single scaling pass against real AWS credentials, fed a
// synthetic scheduled event, with spans printed to stdout.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	tp := tracing.InitStdoutTracer(logger)
	defer func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("error shutting down tracer provider", "error", err)
		}
	}(ctx)

	payload, err := json.Marshal(map[string]any{
		"source":      "aws.events",
		"detail-type": "Scheduled Event",
		"time":        time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("could not build synthetic event", "error", err)
		os.Exit(1)
	}

	t := otel.Tracer("local")
	ctx, span := t.Start(ctx, "autoscaling")
	defer span.End()

	if err := cmdinternal.Handle(ctx, logger, payload); err != nil {
		logger.With("msg", err.Error()).Error("could not handle request")
		span.RecordError(err)
		span.SetStatus(codes.Error, "")
		os.Exit(1)
	}
}
