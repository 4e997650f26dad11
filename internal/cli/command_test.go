package cli

import (
	"bytes"
	"context"
	"testing"
)

func TestVersionFlag(t *testing.T) {
	var stdout bytes.Buffer
	code := Execute(context.Background(), []string{"--version"}, Deps{Stdout: &stdout}, "1.2.3")
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("1.2.3")) {
		t.Fatalf("expected version output, got %q", stdout.String())
	}
}

func TestPositionalArgsRejected(t *testing.T) {
	var stderr bytes.Buffer
	code := Execute(context.Background(), []string{"web"}, Deps{Stderr: &stderr}, "test")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("unknown command")) {
		t.Fatalf("expected unknown command error, got %q", stderr.String())
	}
}

func TestShorthandFlags(t *testing.T) {
	var code int
	cmd := NewCommand(context.Background(), Deps{}, "test", &code)
	if err := cmd.ParseFlags([]string{"-l", "-L", "-d", "--delete", "-n", "web", "-y", "-w"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, name := range []string{"list", "list-regions", "desc", "delete", "yes", "whoami"} {
		if v, err := cmd.Flags().GetBool(name); err != nil || !v {
			t.Fatalf("expected %s set, got %v %v", name, v, err)
		}
	}
	if v, _ := cmd.Flags().GetString("name"); v != "web" {
		t.Fatalf("expected name web, got %q", v)
	}
}
