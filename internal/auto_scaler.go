package internal

import (
	"context"
	"log/slog"
	"time"
)

//go:generate mockery --output ./ --name ControllerInterface --filename mock_controller_test.go --outpkg internal_test
type ControllerInterface interface {
	GetQueueDepth(ctx context.Context) (depth int, err error)
	GetService(ctx context.Context) (out *ServiceCapacity, err error)
	UpdateDesiredCount(ctx context.Context, desiredCount int) (err error)
}

type AutoScaler struct {
	controller ControllerInterface
	history    *ScaleHistory
	logger     *slog.Logger
}

func NewAutoScaler(controller ControllerInterface, history *ScaleHistory, logger *slog.Logger) *AutoScaler {
	return &AutoScaler{
		controller: controller,
		history:    history,
		logger:     logger,
	}
}

// Scale classifies the invocation payload and drives the full pipeline:
// read queue depth, read service capacity, decide, apply. Both trigger
// origins run the identical pipeline; the origin reaches logging and the
// scale-down debounce only, never the scaling arithmetic.
//
// Every invocation produces exactly one result, success or failure. No
// error escapes: the periodic trigger is the retry mechanism.
func (s *AutoScaler) Scale(ctx context.Context, payload []byte, cfg RuntimeConfig) *InvocationResult {
	started := time.Now()

	event, err := ParseInvocationEvent(payload)

	result := &InvocationResult{
		Trigger:     event.Trigger,
		ActionTaken: ActionNone,
	}

	logger := s.logger.With(
		"trigger_source", string(event.Trigger),
		"cluster", cfg.ClusterName,
		"service", cfg.ServiceName,
	)

	if err != nil {
		result.fail(err)
		logger.Warn("could not classify invocation payload", "error", err)
		return result.finish(started)
	}

	if event.Trigger == TriggerSourceSQS {
		// A message arrival proves the queue was non-empty a moment ago,
		// even if the eventually consistent depth attribute still reads
		// zero. Restart the empty streak before observing.
		s.history.ResetEmptyStreak()
		logger = logger.With("message_count", event.MessageCount)
	}

	depth, err := s.controller.GetQueueDepth(ctx)
	if err != nil {
		result.fail(err)
		logger.Error("could not read queue depth", "error", err)
		return result.finish(started)
	}

	result.QueueDepth = depth
	s.history.ObserveDepth(depth, time.Now())

	service, err := s.controller.GetService(ctx)
	if err != nil {
		result.fail(err)
		logger.Error("could not read service capacity", "error", err)
		return result.finish(started)
	}

	result.CurrentTasks = service.RunningCount
	logger = logger.With(
		"queue_depth", depth,
		"desired_count", service.DesiredCount,
		"running_count", service.RunningCount,
	)

	state, err := NewState(depth, service)
	if err != nil {
		result.fail(NewError(ErrorKindServiceUnavailable, err))
		logger.Error("could not build scaling state", "error", err)
		return result.finish(started)
	}

	decision := state.Decide(cfg.ScaleUpTarget)
	logger = logger.With("decision", decision.ScalingDirection.String())

	for _, comment := range decision.Comments {
		logger.Info(comment)
	}

	if decision.ScalingDirection == ScalingDirectionNone {
		return result.finish(started)
	}

	if decision.ScalingDirection == ScalingDirectionDown &&
		!s.history.EmptyFor(cfg.ScaleDownThreshold, time.Now()) {
		logger.Info("holding scale-down until the queue stays empty past the threshold",
			"threshold", cfg.ScaleDownThreshold)
		return result.finish(started)
	}

	result.ScaleTarget = decision.TargetCount

	if err := s.controller.UpdateDesiredCount(ctx, decision.TargetCount); err != nil {
		result.fail(err)
		if decision.ScalingDirection == ScalingDirectionUp {
			result.ActionTaken = ActionScaleUpFailed
		} else {
			result.ActionTaken = ActionScaleDownFailed
		}
		logger.Error("could not update desired count", "error", err)
		return result.finish(started)
	}

	result.Applied = true
	if decision.ScalingDirection == ScalingDirectionUp {
		result.ActionTaken = ActionScaleUp
	} else {
		result.ActionTaken = ActionScaleDown
	}

	s.history.RecordAction(time.Now())
	logger.Info("scaled the service", "scale_target", decision.TargetCount)

	return result.finish(started)
}
