package internal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mw/ecsautoscalr/internal"
)

func TestParseInvocationEvent_SQSBatch(t *testing.T) {
	payload := []byte(`{
		"Records": [
			{"eventSource": "aws:sqs", "body": "one"},
			{"eventSource": "aws:sqs", "body": "two"}
		]
	}`)

	event, err := internal.ParseInvocationEvent(payload)

	require.NoError(t, err)
	require.Equal(t, internal.TriggerSourceSQS, event.Trigger)
	require.Equal(t, 2, event.MessageCount)
}

func TestParseInvocationEvent_ScheduledEvent(t *testing.T) {
	payload := []byte(`{
		"source": "aws.events",
		"detail-type": "Scheduled Event",
		"time": "2024-05-01T12:00:00Z"
	}`)

	event, err := internal.ParseInvocationEvent(payload)

	require.NoError(t, err)
	require.Equal(t, internal.TriggerSourceSchedule, event.Trigger)
	require.True(t, event.FiredAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}

func TestParseInvocationEvent_MalformedJSON_FailsClosed(t *testing.T) {
	event, err := internal.ParseInvocationEvent([]byte(`{"Records": [`))

	require.Equal(t, internal.TriggerSourceUnknown, event.Trigger)
	require.Equal(t, internal.ErrorKindUnrecognizedTrigger, internal.KindOf(err))
}

func TestParseInvocationEvent_UnknownShape_FailsClosed(t *testing.T) {
	event, err := internal.ParseInvocationEvent([]byte(`{"hello": "world"}`))

	require.Equal(t, internal.TriggerSourceUnknown, event.Trigger)
	require.Equal(t, internal.ErrorKindUnrecognizedTrigger, internal.KindOf(err))
}

func TestParseInvocationEvent_ForeignRecords_FailsClosed(t *testing.T) {
	payload := []byte(`{
		"Records": [
			{"eventSource": "aws:s3"}
		]
	}`)

	event, err := internal.ParseInvocationEvent(payload)

	require.Equal(t, internal.TriggerSourceUnknown, event.Trigger)
	require.Equal(t, internal.ErrorKindUnrecognizedTrigger, internal.KindOf(err))
}

func TestParseInvocationEvent_EmptyObject_FailsClosed(t *testing.T) {
	_, err := internal.ParseInvocationEvent([]byte(`{}`))

	require.Equal(t, internal.ErrorKindUnrecognizedTrigger, internal.KindOf(err))
}
