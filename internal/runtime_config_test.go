package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SQS_QUEUE_URL", "https://sqs.eu-west-1.amazonaws.com/123456789012/test-queue")
	t.Setenv("ECS_CLUSTER_NAME", "test-cluster")
	t.Setenv("ECS_SERVICE_NAME", "test-service")
}

func TestRuntimeConfig_Parse_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := &RuntimeConfig{}
	require.NoError(t, cfg.Parse())

	assert.Equal(t, 1, cfg.ScaleUpTarget)
	assert.Equal(t, 2*time.Minute, cfg.ScaleDownThreshold)
	assert.Equal(t, "test-cluster", cfg.ClusterName)
	assert.Equal(t, "test-service", cfg.ServiceName)
}

func TestRuntimeConfig_Parse_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SCALE_UP_TARGET", "4")
	t.Setenv("SCALE_DOWN_THRESHOLD", "5m")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg := &RuntimeConfig{}
	require.NoError(t, cfg.Parse())

	assert.Equal(t, 4, cfg.ScaleUpTarget)
	assert.Equal(t, 5*time.Minute, cfg.ScaleDownThreshold)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestRuntimeConfig_Parse_MissingService_Fails(t *testing.T) {
	t.Setenv("SQS_QUEUE_URL", "https://sqs.eu-west-1.amazonaws.com/123456789012/test-queue")
	t.Setenv("ECS_CLUSTER_NAME", "test-cluster")

	cfg := &RuntimeConfig{}
	require.Error(t, cfg.Parse())
}

func TestRuntimeConfig_Validate_QueueIdentityRequired(t *testing.T) {
	cfg := RuntimeConfig{
		ClusterName:   "test-cluster",
		ServiceName:   "test-service",
		ScaleUpTarget: 1,
	}

	require.Error(t, cfg.Validate())
}

func TestRuntimeConfig_Validate_QueueIdentityExclusive(t *testing.T) {
	cfg := RuntimeConfig{
		QueueURL:          "https://sqs.eu-west-1.amazonaws.com/123456789012/test-queue",
		QueueURLParameter: "/scaler/queue-url",
		ClusterName:       "test-cluster",
		ServiceName:       "test-service",
		ScaleUpTarget:     1,
	}

	require.Error(t, cfg.Validate())
}

func TestRuntimeConfig_Validate_QueueURLParameterAlone_OK(t *testing.T) {
	cfg := RuntimeConfig{
		QueueURLParameter: "/scaler/queue-url",
		ClusterName:       "test-cluster",
		ServiceName:       "test-service",
		ScaleUpTarget:     1,
	}

	require.NoError(t, cfg.Validate())
}

func TestRuntimeConfig_Validate_ScaleUpTargetAtLeastOne(t *testing.T) {
	cfg := RuntimeConfig{
		QueueURL:      "https://sqs.eu-west-1.amazonaws.com/123456789012/test-queue",
		ClusterName:   "test-cluster",
		ServiceName:   "test-service",
		ScaleUpTarget: 0,
	}

	require.Error(t, cfg.Validate())
}

func TestRuntimeConfig_Validate_NegativeThreshold_Fails(t *testing.T) {
	cfg := RuntimeConfig{
		QueueURL:           "https://sqs.eu-west-1.amazonaws.com/123456789012/test-queue",
		ClusterName:        "test-cluster",
		ServiceName:        "test-service",
		ScaleUpTarget:      1,
		ScaleDownThreshold: -time.Minute,
	}

	require.Error(t, cfg.Validate())
}
