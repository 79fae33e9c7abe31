package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// TriggerSource identifies which of the two event sources produced an
// invocation.
type TriggerSource string

const (
	TriggerSourceSQS      TriggerSource = "sqs"
	TriggerSourceSchedule TriggerSource = "eventbridge"
	TriggerSourceUnknown  TriggerSource = "unknown"
)

// InvocationEvent is the decoded form of a Lambda payload. Exactly one of
// the two trigger shapes is represented; the trigger source influences
// logging and the scale-down debounce reset only, never the scaling
// arithmetic itself.
type InvocationEvent struct {
	Trigger TriggerSource

	// MessageCount is the number of SQS records delivered with a message
	// arrival. Zero for scheduled invocations.
	MessageCount int

	// FiredAt is the schedule fire time reported by EventBridge. Zero for
	// message arrivals.
	FiredAt time.Time
}

const scheduledEventSource = "aws.events"

// invocationProbe covers both payload shapes we accept: an SQS event-source
// mapping batch and an EventBridge scheduled event.
type invocationProbe struct {
	Records    []events.SQSMessage `json:"Records"`
	Source     string              `json:"source"`
	DetailType string              `json:"detail-type"`
	Time       time.Time           `json:"time"`
}

// ParseInvocationEvent classifies a raw Lambda payload into an
// InvocationEvent. It fails closed: anything that is neither an SQS batch
// nor a scheduled event is an unrecognized trigger, never a guess.
func ParseInvocationEvent(payload []byte) (InvocationEvent, error) {
	var probe invocationProbe

	if err := json.Unmarshal(payload, &probe); err != nil {
		return InvocationEvent{Trigger: TriggerSourceUnknown},
			NewError(ErrorKindUnrecognizedTrigger, err)
	}

	if len(probe.Records) > 0 {
		for _, record := range probe.Records {
			if record.EventSource != "aws:sqs" {
				return InvocationEvent{Trigger: TriggerSourceUnknown},
					NewError(ErrorKindUnrecognizedTrigger,
						fmt.Errorf("record event source %q is not aws:sqs", record.EventSource))
			}
		}

		return InvocationEvent{
			Trigger:      TriggerSourceSQS,
			MessageCount: len(probe.Records),
		}, nil
	}

	if probe.Source == scheduledEventSource {
		return InvocationEvent{
			Trigger: TriggerSourceSchedule,
			FiredAt: probe.Time,
		}, nil
	}

	return InvocationEvent{Trigger: TriggerSourceUnknown},
		NewError(ErrorKindUnrecognizedTrigger, errors.New("payload matches no known trigger shape"))
}
