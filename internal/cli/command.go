package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand builds the root command. The exit code of a completed run is
// stored in *code.
func NewCommand(ctx context.Context, deps Deps, version string, code *int) *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:   "apprunnerctl",
		Short: "List, describe and delete AWS App Runner services",
		Long: `apprunnerctl queries AWS App Runner in the region configured for the
current AWS profile. It lists services, describes one by name, deletes one
and reports which regions App Runner supports.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode, err := Run(ctx, opts, deps)
			*code = exitCode
			return err
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(c.UsageString())
		return err
	})

	flags := cmd.Flags()
	flags.BoolVarP(&opts.List, "list", "l", false, "List App Runner services")
	flags.BoolVarP(&opts.ListRegions, "list-regions", "L", false, "List supported AWS Regions for App Runner")
	flags.BoolVarP(&opts.Describe, "desc", "d", false, "Describe App Runner service")
	flags.BoolVar(&opts.Delete, "delete", false, "Delete App Runner service")
	flags.StringVarP(&opts.Name, "name", "n", "", "App Runner service name")
	flags.BoolVarP(&opts.Yes, "yes", "y", false, "Confirm deletion")
	flags.BoolVar(&opts.ReadOnly, "read-only", false, "Refuse destructive actions")
	flags.BoolVarP(&opts.WhoAmI, "whoami", "w", false, "Show the AWS caller identity")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path")
	flags.StringVar(&opts.Profile, "profile", "", "AWS shared config profile")
	flags.StringVar(&opts.Region, "region", "", "AWS region")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level")
	return cmd
}

// Execute parses args, runs the command and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Deps, version string) int {
	code := ExitOK
	cmd := NewCommand(ctx, deps, version, &code)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if deps.Stdout != nil {
		cmd.SetOut(deps.Stdout)
	}
	if deps.Stderr != nil {
		cmd.SetErr(deps.Stderr)
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		if code == ExitOK {
			code = ExitError
		}
		return code
	}
	return code
}
