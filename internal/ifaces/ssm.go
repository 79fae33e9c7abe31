package ifaces

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSM is an interface which mocks the subset of the SSM client that we use
// to resolve indirect configuration values.
//
//go:generate mockery --inpackage --name SSM --filename mock_ssm.go
type SSM interface {
	GetParameter(context.Context, *ssm.GetParameterInput, ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}
