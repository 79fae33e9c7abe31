package internal

import (
	"log/slog"
	"time"
)

// Action is the externally visible outcome of an invocation, recorded in
// the result and the log sink.
type Action string

const (
	ActionNone            Action = "none"
	ActionScaleUp         Action = "scale_up"
	ActionScaleDown       Action = "scale_down"
	ActionScaleUpFailed   Action = "scale_up_failed"
	ActionScaleDownFailed Action = "scale_down_failed"
)

// InvocationResult is the audit record of one invocation. Every invocation
// produces exactly one, success or failure.
type InvocationResult struct {
	Trigger      TriggerSource `json:"trigger_source"`
	QueueDepth   int           `json:"queue_depth"`
	CurrentTasks int           `json:"current_tasks"`
	ActionTaken  Action        `json:"action_taken"`
	ScaleTarget  int           `json:"scale_target"`

	// Applied reports whether a capacity mutation was issued and accepted.
	Applied bool `json:"applied"`

	// ErrorKind and Error are set only when the invocation failed.
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`

	ExecutionTimeMs int64 `json:"execution_time_ms"`
}

func (r *InvocationResult) fail(err error) {
	r.ErrorKind = KindOf(err)
	r.Error = err.Error()
}

func (r *InvocationResult) finish(started time.Time) *InvocationResult {
	r.ExecutionTimeMs = time.Since(started).Milliseconds()
	return r
}

// LogValue lets the whole result be attached to a log record as one group.
func (r *InvocationResult) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("trigger_source", string(r.Trigger)),
		slog.Int("queue_depth", r.QueueDepth),
		slog.Int("current_tasks", r.CurrentTasks),
		slog.String("action_taken", string(r.ActionTaken)),
		slog.Int("scale_target", r.ScaleTarget),
		slog.Bool("applied", r.Applied),
		slog.Int64("execution_time_ms", r.ExecutionTimeMs),
	}

	if r.ErrorKind != "" {
		attrs = append(attrs,
			slog.String("error_kind", string(r.ErrorKind)),
			slog.String("error", r.Error),
		)
	}

	return slog.GroupValue(attrs...)
}
