package internal

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// RuntimeConfig is the process-wide configuration, loaded once at startup
// and read-only afterwards.
type RuntimeConfig struct {
	// Queue identity. Exactly one of these must be set: either the queue
	// URL directly, or the name of an SSM parameter holding it.
	QueueURL          string `env:"SQS_QUEUE_URL"`
	QueueURLParameter string `env:"SQS_QUEUE_URL_PARAMETER"`

	// Target service identity.
	ClusterName string `env:"ECS_CLUSTER_NAME,notEmpty"`
	ServiceName string `env:"ECS_SERVICE_NAME,notEmpty"`

	// ScaleUpTarget is the desired count requested whenever the queue has
	// pending work.
	ScaleUpTarget int `env:"SCALE_UP_TARGET" envDefault:"1"`

	// ScaleDownThreshold is how long the queue must be observed
	// continuously empty before the service is scaled to zero. Zero
	// disables the debounce and scales down on the first empty read.
	ScaleDownThreshold time.Duration `env:"SCALE_DOWN_THRESHOLD" envDefault:"2m"`

	// Region overrides the SDK's default region resolution when set.
	Region string `env:"AWS_REGION"`
}

// Parse populates the config from environment variables and validates it.
func (r *RuntimeConfig) Parse() error {
	if err := env.Parse(r); err != nil {
		return fmt.Errorf("could not parse environment variables: %w", err)
	}

	return r.Validate()
}

func (r RuntimeConfig) Validate() error {
	if r.QueueURL == "" && r.QueueURLParameter == "" {
		return errors.New("one of SQS_QUEUE_URL or SQS_QUEUE_URL_PARAMETER must be set")
	}

	if r.QueueURL != "" && r.QueueURLParameter != "" {
		return errors.New("SQS_QUEUE_URL and SQS_QUEUE_URL_PARAMETER are mutually exclusive")
	}

	if r.ScaleUpTarget < 1 {
		return fmt.Errorf("SCALE_UP_TARGET must be at least 1, got %d", r.ScaleUpTarget)
	}

	if r.ScaleDownThreshold < 0 {
		return fmt.Errorf("SCALE_DOWN_THRESHOLD must not be negative, got %s", r.ScaleDownThreshold)
	}

	return nil
}
