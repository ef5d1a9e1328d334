package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ResolveValue resolves a target configuration value. Values of the form
// "ssm:/path/to/param" are fetched from SSM Parameter Store with
// decryption; anything else is returned as-is.
func (c *Client) ResolveValue(ctx context.Context, value string) (string, error) {
	name, ok := strings.CutPrefix(value, "ssm:")
	if !ok {
		return value, nil
	}

	output, err := c.SSM.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: boolPtr(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", value, err)
	}

	return deref(output.Parameter.Value), nil
}
