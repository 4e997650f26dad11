package main

import (
	"context"
	"os"
	"reflect"
	"testing"

	"apprunnerctl/internal/cli"
)

func TestMainPassesArgsAndExitCode(t *testing.T) {
	origExecute := execute
	origExit := exit
	origArgs := os.Args
	t.Cleanup(func() {
		execute = origExecute
		exit = origExit
		os.Args = origArgs
	})

	var gotArgs []string
	var gotVersion string
	execute = func(ctx context.Context, args []string, deps cli.Deps, v string) int {
		gotArgs = args
		gotVersion = v
		if deps.Stdout == nil || deps.Provider == nil {
			t.Fatalf("expected default deps")
		}
		return cli.ExitNoServices
	}
	exitCode := -1
	exit = func(code int) {
		exitCode = code
	}
	os.Args = []string{"apprunnerctl", "--list", "--region", "us-west-2"}

	main()

	if !reflect.DeepEqual(gotArgs, []string{"--list", "--region", "us-west-2"}) {
		t.Fatalf("unexpected args: %#v", gotArgs)
	}
	if gotVersion != version {
		t.Fatalf("unexpected version %q", gotVersion)
	}
	if exitCode != cli.ExitNoServices {
		t.Fatalf("expected exit code %d, got %d", cli.ExitNoServices, exitCode)
	}
}
