package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-xray-sdk-go/xray"

	cmdinternal "github.com/mw/ecsautoscalr/cmd/internal"
	"github.com/mw/ecsautoscalr/internal/tracing"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	tp := tracing.InitOtelXrayTracer(ctx, logger, true)
	defer func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("error shutting down tracer provider", "error", err)
		}
	}(ctx)

	lambda.Start(func(ctx context.Context, payload json.RawMessage) error {
		if err := xray.Configure(xray.Config{ServiceVersion: "1.0.0"}); err != nil {
			return fmt.Errorf("could not configure X-Ray: %w", err)
		}

		log := logger
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			log = logger.With("aws_request_id", lc.AwsRequestID)
		}

		return cmdinternal.Handle(ctx, log, payload)
	})
}
