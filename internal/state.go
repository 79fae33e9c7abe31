package internal

import (
	"errors"
	"fmt"
)

// ServiceCapacity is a fresh snapshot of the target service's run-state at
// decision time. It is read anew on every invocation and never cached.
type ServiceCapacity struct {
	Cluster string
	Service string

	// DesiredCount is the count currently requested of the control plane.
	DesiredCount int

	// RunningCount lags DesiredCount while tasks start up or drain.
	RunningCount int
}

// State represents the state of the world, as far as the scaler is
// concerned: the queue backlog and the current capacity of the target
// service.
type State struct {
	// QueueDepth is the approximate number of pending messages. The queue
	// attribute is eventually consistent, so this is an estimate, never an
	// exact count.
	QueueDepth int

	Service *ServiceCapacity
}

func NewState(queueDepth int, service *ServiceCapacity) (*State, error) {
	if queueDepth < 0 {
		return nil, fmt.Errorf("queue depth must not be negative: %d", queueDepth)
	}

	if service == nil {
		return nil, errors.New("service capacity is not set")
	}

	if service.DesiredCount < 0 {
		return nil, fmt.Errorf("service desired count must not be negative: %d", service.DesiredCount)
	}

	return &State{QueueDepth: queueDepth, Service: service}, nil
}

// Decide maps the observed state to a scaling decision. It is pure and
// total: every (queue depth, desired count) pair yields exactly one of the
// three directions.
//
// Scale-up is evaluated first so that a queue observed mid-transition
// resolves toward availability rather than cost.
func (s *State) Decide(scaleUpTarget int) Decision {
	if s.QueueDepth > 0 && s.Service.DesiredCount < scaleUpTarget {
		return Decision{
			ScalingDirection: ScalingDirectionUp,
			TargetCount:      scaleUpTarget,
			Comments:         []string{fmt.Sprintf("queue has %d pending messages, raising desired count to %d", s.QueueDepth, scaleUpTarget)},
		}
	}

	if s.QueueDepth == 0 && s.Service.DesiredCount > 0 {
		// Tasks already in flight keep draining; setting the desired count
		// to zero does not interrupt them.
		return Decision{
			ScalingDirection: ScalingDirectionDown,
			TargetCount:      0,
			Comments:         []string{"queue is empty, scaling the service to zero"},
		}
	}

	if s.QueueDepth > 0 {
		return Decision{
			ScalingDirection: ScalingDirectionNone,
			Comments:         []string{"service is already at the scale-up target"},
		}
	}

	return Decision{
		ScalingDirection: ScalingDirectionNone,
		Comments:         []string{"queue is empty and the service is already at zero"},
	}
}
