package internal

// ScalingDirection represents the direction in which the autoscaler should
// scale the service.
type ScalingDirection int

const (
	ScalingDirectionNone ScalingDirection = iota
	ScalingDirectionUp
	ScalingDirectionDown
)

func (d ScalingDirection) String() string {
	switch d {
	case ScalingDirectionUp:
		return "up"
	case ScalingDirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Decision represents the decision made by the scaling policy.
type Decision struct {
	// Which direction to scale in.
	ScalingDirection ScalingDirection

	// The absolute desired count to request from the service. Only
	// meaningful when the direction is up or down; a scale-down always
	// targets zero.
	TargetCount int

	// Comments explaining how the decision was reached.
	Comments []string
}
