// Package apprunner wraps the App Runner API calls the CLI needs: listing,
// describing and deleting services.
package apprunner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdkapprunner "github.com/aws/aws-sdk-go-v2/service/apprunner"
	artypes "github.com/aws/aws-sdk-go-v2/service/apprunner/types"
	"github.com/aws/smithy-go"
	log "github.com/sirupsen/logrus"
)

// API is the subset of the App Runner SDK client used here.
type API interface {
	sdkapprunner.ListServicesAPIClient
	DescribeService(ctx context.Context, params *sdkapprunner.DescribeServiceInput, optFns ...func(*sdkapprunner.Options)) (*sdkapprunner.DescribeServiceOutput, error)
	DeleteService(ctx context.Context, params *sdkapprunner.DeleteServiceInput, optFns ...func(*sdkapprunner.Options)) (*sdkapprunner.DeleteServiceOutput, error)
}

func NewAPI(cfg aws.Config) API {
	return sdkapprunner.NewFromConfig(cfg)
}

type Client struct {
	api      API
	pageSize int32
	log      log.FieldLogger
}

type Option func(*Client)

// WithPageSize sets MaxResults on list requests. Zero leaves it to the service.
func WithPageSize(size int32) Option {
	return func(c *Client) {
		c.pageSize = size
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

func NewClient(api API, opts ...Option) *Client {
	c := &Client{api: api, log: log.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListServices returns every service in the region, following pagination, in
// the order the API returns them.
func (c *Client) ListServices(ctx context.Context) ([]ServiceSummary, error) {
	input := &sdkapprunner.ListServicesInput{}
	if c.pageSize > 0 {
		input.MaxResults = aws.Int32(c.pageSize)
	}
	paginator := sdkapprunner.NewListServicesPaginator(c.api, input)
	var services []ServiceSummary
	for page := 1; paginator.HasMorePages(); page++ {
		c.log.WithFields(log.Fields{"operation": "ListServices", "page": page}).Debug("calling App Runner")
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError("list services", err)
		}
		for _, summary := range out.ServiceSummaryList {
			service, err := summarizeService(summary)
			if err != nil {
				return nil, err
			}
			services = append(services, service)
		}
	}
	return services, nil
}

// FindService scans the service list for an exact name match. The boolean is
// false when nothing matches.
func (c *Client) FindService(ctx context.Context, name string) (ServiceSummary, bool, error) {
	services, err := c.ListServices(ctx)
	if err != nil {
		return ServiceSummary{}, false, err
	}
	for _, service := range services {
		if service.Name == name {
			return service, true, nil
		}
	}
	return ServiceSummary{}, false, nil
}

func (c *Client) DescribeService(ctx context.Context, arn string) (ServiceDetail, error) {
	c.log.WithFields(log.Fields{"operation": "DescribeService", "service": arn}).Debug("calling App Runner")
	out, err := c.api.DescribeService(ctx, &sdkapprunner.DescribeServiceInput{ServiceArn: aws.String(arn)})
	if err != nil {
		return ServiceDetail{}, wrapAPIError("describe service", err)
	}
	if out.Service == nil {
		return ServiceDetail{}, &MalformedResponseError{Operation: "DescribeService", Field: "Service"}
	}
	return detailService(out.Service)
}

func (c *Client) DeleteService(ctx context.Context, arn string) (Deletion, error) {
	c.log.WithFields(log.Fields{"operation": "DeleteService", "service": arn}).Debug("calling App Runner")
	out, err := c.api.DeleteService(ctx, &sdkapprunner.DeleteServiceInput{ServiceArn: aws.String(arn)})
	if err != nil {
		return Deletion{}, wrapAPIError("delete service", err)
	}
	deletion := Deletion{
		Service:     ServiceSummary{ARN: arn},
		OperationID: aws.ToString(out.OperationId),
	}
	if out.Service != nil {
		deletion.Service.Name = aws.ToString(out.Service.ServiceName)
		deletion.Service.ID = aws.ToString(out.Service.ServiceId)
		deletion.Service.URL = aws.ToString(out.Service.ServiceUrl)
		deletion.Service.Status = string(out.Service.Status)
	}
	return deletion, nil
}

func summarizeService(summary artypes.ServiceSummary) (ServiceSummary, error) {
	const op = "ListServices"
	if summary.ServiceName == nil {
		return ServiceSummary{}, &MalformedResponseError{Operation: op, Field: "ServiceName"}
	}
	if summary.ServiceArn == nil {
		return ServiceSummary{}, &MalformedResponseError{Operation: op, Field: "ServiceArn"}
	}
	if summary.ServiceUrl == nil {
		return ServiceSummary{}, &MalformedResponseError{Operation: op, Field: "ServiceUrl"}
	}
	return ServiceSummary{
		Name:   *summary.ServiceName,
		ID:     aws.ToString(summary.ServiceId),
		ARN:    *summary.ServiceArn,
		URL:    *summary.ServiceUrl,
		Status: string(summary.Status),
	}, nil
}

func detailService(service *artypes.Service) (ServiceDetail, error) {
	const op = "DescribeService"
	missing := func(field string) error {
		return &MalformedResponseError{Operation: op, Field: field}
	}
	if service.ServiceName == nil {
		return ServiceDetail{}, missing("ServiceName")
	}
	if service.ServiceArn == nil {
		return ServiceDetail{}, missing("ServiceArn")
	}
	if service.ServiceUrl == nil {
		return ServiceDetail{}, missing("ServiceUrl")
	}
	if service.CreatedAt == nil {
		return ServiceDetail{}, missing("CreatedAt")
	}
	instance := service.InstanceConfiguration
	if instance == nil {
		return ServiceDetail{}, missing("InstanceConfiguration")
	}
	if instance.Cpu == nil {
		return ServiceDetail{}, missing("InstanceConfiguration.Cpu")
	}
	if instance.Memory == nil {
		return ServiceDetail{}, missing("InstanceConfiguration.Memory")
	}
	port, source, err := sourceOf(service.SourceConfiguration)
	if err != nil {
		return ServiceDetail{}, err
	}
	return ServiceDetail{
		Name:      *service.ServiceName,
		ARN:       *service.ServiceArn,
		URL:       *service.ServiceUrl,
		Port:      port,
		CPU:       *instance.Cpu,
		Memory:    *instance.Memory,
		CreatedAt: service.CreatedAt.UTC(),
		Status:    string(service.Status),
		Source:    source,
	}, nil
}

// sourceOf returns the listening port and a description of where the service
// runs from. Image services carry the port on the image configuration,
// source-code services on the code configuration values.
func sourceOf(cfg *artypes.SourceConfiguration) (string, string, error) {
	const op = "DescribeService"
	if cfg == nil {
		return "", "", &MalformedResponseError{Operation: op, Field: "SourceConfiguration"}
	}
	if image := cfg.ImageRepository; image != nil {
		if image.ImageConfiguration == nil || image.ImageConfiguration.Port == nil {
			return "", "", &MalformedResponseError{Operation: op, Field: "SourceConfiguration.ImageRepository.ImageConfiguration.Port"}
		}
		return *image.ImageConfiguration.Port, aws.ToString(image.ImageIdentifier), nil
	}
	if code := cfg.CodeRepository; code != nil {
		if code.CodeConfiguration == nil || code.CodeConfiguration.CodeConfigurationValues == nil ||
			code.CodeConfiguration.CodeConfigurationValues.Port == nil {
			return "", "", &MalformedResponseError{Operation: op, Field: "SourceConfiguration.CodeRepository.CodeConfiguration.CodeConfigurationValues.Port"}
		}
		return *code.CodeConfiguration.CodeConfigurationValues.Port, aws.ToString(code.RepositoryUrl), nil
	}
	return "", "", &MalformedResponseError{Operation: op, Field: "SourceConfiguration.ImageRepository"}
}

// APIError is a provider-side failure reported by App Runner.
type APIError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Operation, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var notFound *artypes.ResourceNotFoundException
	return errors.As(err, &notFound)
}

func wrapAPIError(operation string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Operation: operation,
			Code:      apiErr.ErrorCode(),
			Message:   strings.TrimSpace(apiErr.ErrorMessage()),
			Err:       err,
		}
	}
	return fmt.Errorf("%s: %w", operation, err)
}
