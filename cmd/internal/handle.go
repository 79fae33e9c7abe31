package internal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mw/ecsautoscalr/internal"
)

// history survives across warm invocations of the same process, so the
// scale-down debounce can span consecutive timer ticks. Losing it on a cold
// start just restarts the debounce window.
var history = internal.NewScaleHistory()

// Handle runs one full scaling invocation for the given raw payload. It
// returns an error only for process-level problems (bad configuration,
// unreachable credential chain); everything that happens inside the
// pipeline is reported through the logged invocation result instead, since
// the next trigger is the retry mechanism.
func Handle(ctx context.Context, logger *slog.Logger, payload []byte) error {
	var cfg internal.RuntimeConfig
	if err := cfg.Parse(); err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	controller, err := internal.NewECSController(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("could not create ECS controller: %w", err)
	}

	result := internal.NewAutoScaler(controller, history, logger).Scale(ctx, payload, cfg)

	logger.Info("invocation complete", "result", result)

	return nil
}
