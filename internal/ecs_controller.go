package internal

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/mw/ecsautoscalr/internal/ifaces"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ECSController handles all interactions with SQS and the ECS control plane
// so that the scaler can focus on the core logic.
type ECSController struct {
	// Clients.
	SQS ifaces.SQS
	ECS ifaces.ECS

	// Configuration.
	QueueURL string
	Cluster  string
	Service  string

	// Telemetry.
	Tracer trace.Tracer
}

// NewECSController creates a controller from the runtime configuration,
// resolving the queue URL through SSM when it is configured indirectly.
func NewECSController(ctx context.Context, cfg *RuntimeConfig) (*ECSController, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not load AWS configuration: %w", err)
	}

	otelaws.AppendMiddlewares(&awsConfig.APIOptions)

	queueURL := cfg.QueueURL
	if queueURL == "" {
		queueURL, err = resolveQueueURL(ctx, ssm.NewFromConfig(awsConfig), cfg.QueueURLParameter)
		if err != nil {
			return nil, err
		}
	}

	return &ECSController{
		SQS:      sqs.NewFromConfig(awsConfig),
		ECS:      ecs.NewFromConfig(awsConfig),
		QueueURL: queueURL,
		Cluster:  cfg.ClusterName,
		Service:  cfg.ServiceName,
		Tracer:   otel.Tracer("github.com/mw/ecsautoscalr/internal/controller"),
	}, nil
}

func resolveQueueURL(ctx context.Context, client ifaces.SSM, parameterName string) (string, error) {
	output, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(parameterName),
		WithDecryption: aws.Bool(true),
	})

	if err != nil {
		return "", fmt.Errorf("could not get queue URL from SSM: %w", err)
	} else if output.Parameter == nil || output.Parameter.Value == nil {
		return "", errors.New("could not find queue URL parameter value in SSM")
	}

	return *output.Parameter.Value, nil
}

// GetQueueDepth returns the approximate number of visible messages in the
// queue. The attribute is eventually consistent under concurrent producers
// and consumers, so the value is an estimate, never an exact count.
func (c *ECSController) GetQueueDepth(ctx context.Context) (depth int, err error) {
	ctx, span := c.Tracer.Start(ctx, "aws.sqs.getqueuedepth")
	defer span.End()

	var output *sqs.GetQueueAttributesOutput

	output, err = c.SQS.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(c.QueueURL),
		AttributeNames: []sqstypes.QueueAttributeName{sqstypes.QueueAttributeNameApproximateNumberOfMessages},
	})

	if err != nil {
		err = NewError(ErrorKindQueueUnavailable, fmt.Errorf("could not get queue attributes: %w", err))
		return 0, err
	}

	raw, ok := output.Attributes[string(sqstypes.QueueAttributeNameApproximateNumberOfMessages)]
	if !ok {
		err = NewError(ErrorKindQueueUnavailable, errors.New("queue attributes are missing the approximate message count"))
		return 0, err
	}

	depth, err = strconv.Atoi(raw)
	if err != nil {
		err = NewError(ErrorKindQueueUnavailable, fmt.Errorf("could not parse approximate message count %q: %w", raw, err))
		return 0, err
	}

	span.SetAttributes(attribute.Int("queue_depth", depth))

	return depth, nil
}

// GetService returns a fresh capacity snapshot of the target service.
//
// It makes sure that the cluster and service exist: ECS reports a missing
// service through the Failures list rather than an API error.
func (c *ECSController) GetService(ctx context.Context) (out *ServiceCapacity, err error) {
	ctx, span := c.Tracer.Start(ctx, "aws.ecs.describeservice")
	defer span.End()

	var output *ecs.DescribeServicesOutput

	output, err = c.ECS.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  aws.String(c.Cluster),
		Services: []string{c.Service},
	})

	if err != nil {
		err = NewError(ErrorKindServiceUnavailable, fmt.Errorf("could not describe service: %w", err))
		return nil, err
	}

	for _, failure := range output.Failures {
		err = NewError(ErrorKindServiceUnavailable,
			fmt.Errorf("service %s in cluster %s: %s", c.Service, c.Cluster, aws.ToString(failure.Reason)))
		return nil, err
	}

	if len(output.Services) == 0 {
		err = NewError(ErrorKindServiceUnavailable,
			fmt.Errorf("could not find service %s in cluster %s", c.Service, c.Cluster))
		return nil, err
	}

	service := output.Services[0]
	out = &ServiceCapacity{
		Cluster:      c.Cluster,
		Service:      c.Service,
		DesiredCount: int(service.DesiredCount),
		RunningCount: int(service.RunningCount),
	}

	span.SetAttributes(
		attribute.Int("desired_count", out.DesiredCount),
		attribute.Int("running_count", out.RunningCount),
	)

	return out, nil
}

// UpdateDesiredCount issues a single absolute desired-count update to the
// service. The remote call is idempotent: setting a count the service
// already holds is a harmless no-op on the ECS side.
func (c *ECSController) UpdateDesiredCount(ctx context.Context, desiredCount int) (err error) {
	ctx, span := c.Tracer.Start(ctx, "aws.ecs.updateservice")
	defer span.End()

	span.SetAttributes(attribute.Int("desired_count", desiredCount))

	_, err = c.ECS.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:      aws.String(c.Cluster),
		Service:      aws.String(c.Service),
		DesiredCount: aws.Int32(int32(desiredCount)),
	})

	if err != nil {
		err = NewError(ErrorKindMutationFailed, fmt.Errorf("could not update desired count: %w", err))
		return err
	}

	return nil
}
