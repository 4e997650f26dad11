package aws

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
)

func TestResolveRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "us-west-2")
	if region := ResolveRegion(""); region != "us-west-2" {
		t.Fatalf("expected env region, got %q", region)
	}
	if region := ResolveRegion("eu-west-1"); region != "eu-west-1" {
		t.Fatalf("expected explicit region, got %q", region)
	}
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "ap-northeast-1")
	if region := ResolveRegion("  "); region != "ap-northeast-1" {
		t.Fatalf("expected default env region, got %q", region)
	}
}

func TestResolveProfile(t *testing.T) {
	t.Setenv("AWS_PROFILE", "dev")
	if profile := ResolveProfile(""); profile != "dev" {
		t.Fatalf("expected profile, got %q", profile)
	}
	if profile := ResolveProfile("ops"); profile != "ops" {
		t.Fatalf("expected explicit profile, got %q", profile)
	}
}

func writeSharedConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	credentials := `[default]
aws_access_key_id = test
aws_secret_access_key = secret
`
	if err := os.WriteFile(filepath.Join(dir, "credentials"), []byte(credentials), 0600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config"), []byte("[default]\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
}

func TestLoadConfigDefaultRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_PROFILE", "")
	writeSharedConfig(t)
	cfg, err := LoadConfig(context.Background(), "", "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Region != defaultRegion {
		t.Fatalf("expected default region, got %q", cfg.Region)
	}
}

func TestDefaultProviderUsesRegion(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_DEFAULT_PROFILE", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	writeSharedConfig(t)
	cfg, err := DefaultProvider{Region: "eu-west-1"}.Load(context.Background())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Region != "eu-west-1" {
		t.Fatalf("expected region eu-west-1, got %q", cfg.Region)
	}
}

func TestProviderFunc(t *testing.T) {
	var p Provider = ProviderFunc(func(context.Context) (sdkaws.Config, error) {
		return sdkaws.Config{Region: "us-east-2"}, nil
	})
	cfg, err := p.Load(context.Background())
	if err != nil || cfg.Region != "us-east-2" {
		t.Fatalf("unexpected provider result: %q %v", cfg.Region, err)
	}
}
