package region

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"

	awslib "apprunnerctl/internal/aws"
)

// Supported lists the regions where App Runner is offered.
var Supported = []string{
	"us-east-1",
	"us-east-2",
	"eu-west-1",
	"us-west-2",
	"ap-northeast-1",
}

var codePattern = regexp.MustCompile(`[a-z]{2}(?:-[a-z]+)+-[0-9]+`)

// Normalize extracts the bare region code from a region descriptor such as
// `Region("us-west-2")`. The last region-shaped segment wins; input without
// one is returned trimmed.
func Normalize(descriptor string) string {
	descriptor = strings.TrimSpace(descriptor)
	matches := codePattern.FindAllString(descriptor, -1)
	if len(matches) == 0 {
		return descriptor
	}
	return matches[len(matches)-1]
}

func IsSupported(code string) bool {
	for _, supported := range Supported {
		if supported == code {
			return true
		}
	}
	return false
}

// Resolved is the outcome of region resolution. Config is the provider
// configuration the region was read from.
type Resolved struct {
	Code      string
	Supported bool
	Config    sdkaws.Config
}

type Resolver struct {
	provider awslib.Provider
}

func NewResolver(provider awslib.Provider) *Resolver {
	return &Resolver{provider: provider}
}

func (r *Resolver) Resolve(ctx context.Context) (Resolved, error) {
	cfg, err := r.provider.Load(ctx)
	if err != nil {
		return Resolved{}, fmt.Errorf("load aws config: %w", err)
	}
	code := Normalize(cfg.Region)
	return Resolved{Code: code, Supported: IsSupported(code), Config: cfg}, nil
}
