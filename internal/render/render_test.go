package render

import (
	"bytes"
	"testing"

	"apprunnerctl/internal/apprunner"
	awslib "apprunnerctl/internal/aws"
)

func TestRegions(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Regions([]string{"us-east-1", "eu-west-1"}, "eu-central-1")
	want := "Supported Regions for AWS AppRunner are:\nus-east-1\neu-west-1\n---\nYour current profile is configured to use eu-central-1\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestServices(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Services("us-west-2", []apprunner.ServiceSummary{
		{Name: "web", URL: "web.example"},
		{Name: "api", URL: "api.example"},
	})
	want := "AWS App Runner services currently running in us-west-2\n---\nweb - https://web.example\napi - https://api.example\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		render func(*Renderer)
		want   string
	}{
		{"unsupported", func(r *Renderer) { r.Unsupported("eu-central-1") }, "eu-central-1 is not currently supported by AWS AppRunner\n"},
		{"noServices", func(r *Renderer) { r.NoServices() }, "No AWS App Runner services found\n"},
		{"nameRequired", func(r *Renderer) { r.NameRequired() }, "You must provide a Service Name\n"},
		{"notFound", func(r *Renderer) { r.NotFound("web", "us-east-1") }, "Service web not found in Region us-east-1\n"},
		{"refused", func(r *Renderer) { r.DeleteRefused("read-only mode") }, "Refusing to delete: read-only mode\n"},
		{"deleted", func(r *Renderer) {
			r.Deleted(apprunner.Deletion{Service: apprunner.ServiceSummary{ARN: "arn:web"}, OperationID: "op-1"}, "web")
		}, "Deleting service web (arn:web), operation op-1\n"},
		{"identity", func(r *Renderer) {
			r.Identity(awslib.Identity{Account: "123", ARN: "arn:aws:iam::123:user/demo", UserID: "AIDA"})
		}, "Account: 123\nARN: arn:aws:iam::123:user/demo\nUser ID: AIDA\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.render(NewRenderer(&buf))
			if buf.String() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestNilWriter(t *testing.T) {
	NewRenderer(nil).NoServices()
}
