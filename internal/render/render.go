// Package render prints command results as plain text.
package render

import (
	"fmt"
	"io"

	"apprunnerctl/internal/apprunner"
	awslib "apprunnerctl/internal/aws"
)

type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = io.Discard
	}
	return &Renderer{out: out}
}

func (r *Renderer) Regions(supported []string, current string) {
	r.println("Supported Regions for AWS AppRunner are:")
	for _, region := range supported {
		r.println(region)
	}
	r.println("---")
	r.printf("Your current profile is configured to use %s\n", current)
}

func (r *Renderer) Unsupported(region string) {
	r.printf("%s is not currently supported by AWS AppRunner\n", region)
}

func (r *Renderer) Services(region string, services []apprunner.ServiceSummary) {
	r.printf("AWS App Runner services currently running in %s\n", region)
	r.println("---")
	for _, service := range services {
		r.printf("%s - https://%s\n", service.Name, service.URL)
	}
}

func (r *Renderer) NoServices() {
	r.println("No AWS App Runner services found")
}

func (r *Renderer) NameRequired() {
	r.println("You must provide a Service Name")
}

func (r *Renderer) NotFound(name, region string) {
	r.printf("Service %s not found in Region %s\n", name, region)
}

func (r *Renderer) Deleted(deletion apprunner.Deletion, name string) {
	r.printf("Deleting service %s (%s), operation %s\n", name, deletion.Service.ARN, deletion.OperationID)
}

func (r *Renderer) DeleteRefused(reason string) {
	r.printf("Refusing to delete: %s\n", reason)
}

func (r *Renderer) Identity(id awslib.Identity) {
	r.printf("Account: %s\n", id.Account)
	r.printf("ARN: %s\n", id.ARN)
	r.printf("User ID: %s\n", id.UserID)
}

func (r *Renderer) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
