package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	log "github.com/sirupsen/logrus"

	"apprunnerctl/internal/apprunner"
	"apprunnerctl/internal/audit"
	awslib "apprunnerctl/internal/aws"
	"apprunnerctl/internal/config"
	"apprunnerctl/internal/policy"
	"apprunnerctl/internal/region"
	"apprunnerctl/internal/render"
)

// Deps are the collaborators a run needs. Tests replace the AWS pieces with
// stubbed clients.
type Deps struct {
	Provider       func(config.Config) awslib.Provider
	NewServiceAPI  func(sdkaws.Config) apprunner.API
	NewIdentityAPI func(sdkaws.Config) awslib.IdentityAPI
	// Audit overrides the audit_log file from the configuration.
	Audit  *audit.Logger
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		Provider: func(cfg config.Config) awslib.Provider {
			return awslib.DefaultProvider{Profile: cfg.Profile, Region: cfg.Region}
		},
		NewServiceAPI:  apprunner.NewAPI,
		NewIdentityAPI: awslib.NewIdentityAPI,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
}

type runner struct {
	opts     Options
	deps     Deps
	cfg      config.Config
	log      *log.Logger
	out      *render.Renderer
	region   region.Resolved
	services *apprunner.Client
}

// Run executes one invocation and returns the process exit code. Errors are
// returned for failures that have no dedicated exit code.
func Run(ctx context.Context, opts Options, deps Deps) (int, error) {
	if deps.Stdout == nil {
		deps.Stdout = io.Discard
	}
	if deps.Stderr == nil {
		deps.Stderr = io.Discard
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return ExitError, fmt.Errorf("config load failed: %w", err)
	}
	logger, err := newLogger(cfg.LogLevel, deps.Stderr)
	if err != nil {
		return ExitError, err
	}

	resolved, err := region.NewResolver(deps.Provider(cfg)).Resolve(ctx)
	if err != nil {
		return ExitError, err
	}
	rule := Plan(opts)
	logger.WithFields(log.Fields{"region": resolved.Code, "supported": resolved.Supported, "action": rule.Action}).Debug("resolved region")

	r := &runner{
		opts:   opts,
		deps:   deps,
		cfg:    cfg,
		log:    logger,
		out:    render.NewRenderer(deps.Stdout),
		region: resolved,
	}

	if rule.Action == ActionListRegions {
		r.out.Regions(region.Supported, resolved.Code)
		return ExitOK, nil
	}
	if rule.GateRegion && !resolved.Supported {
		r.out.Unsupported(resolved.Code)
		return ExitUnsupportedRegion, nil
	}
	if rule.NeedsName && opts.Name == "" {
		r.out.NameRequired()
		return ExitNameRequired, nil
	}
	if refused := policy.NewGuard(cfg.ReadOnly).Allow(rule.Safety, string(rule.Action), opts.Name, opts.Yes); refused != nil {
		return r.refuse(rule, refused)
	}

	switch rule.Action {
	case ActionList:
		return r.list(ctx)
	case ActionDescribe:
		return r.describe(ctx)
	case ActionDelete:
		return r.deleteService(ctx)
	case ActionWhoAmI:
		return r.whoami(ctx)
	}
	return ExitOK, nil
}

func loadConfig(opts Options) (config.Config, error) {
	path := opts.ConfigPath
	required := path != ""
	if path == "" {
		path = config.DefaultPath()
	}
	overrides := config.Overrides{}
	if opts.Profile != "" {
		overrides.Profile = &opts.Profile
	}
	if opts.Region != "" {
		overrides.Region = &opts.Region
	}
	if opts.LogLevel != "" {
		overrides.LogLevel = &opts.LogLevel
	}
	// --read-only can only tighten the configuration.
	if opts.ReadOnly {
		overrides.ReadOnly = &opts.ReadOnly
	}
	return config.Load(path, required, config.DropInDir(path), overrides)
}

func newLogger(level string, out io.Writer) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if level == "" {
		level = config.DefaultConfig().LogLevel
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(parsed)
	return logger, nil
}

func (r *runner) client() *apprunner.Client {
	if r.services == nil {
		r.services = apprunner.NewClient(
			r.deps.NewServiceAPI(r.region.Config),
			apprunner.WithPageSize(r.cfg.PageSize),
			apprunner.WithLogger(r.log.WithField("region", r.region.Code)),
		)
	}
	return r.services
}

func (r *runner) list(ctx context.Context) (int, error) {
	services, err := r.client().ListServices(ctx)
	if err != nil {
		return ExitError, err
	}
	if len(services) == 0 {
		r.out.NoServices()
		return ExitNoServices, nil
	}
	r.out.Services(r.region.Code, services)
	return ExitOK, nil
}

func (r *runner) describe(ctx context.Context) (int, error) {
	service, found, err := r.client().FindService(ctx, r.opts.Name)
	if err != nil {
		return ExitError, err
	}
	if !found {
		r.out.NotFound(r.opts.Name, r.region.Code)
		return ExitOK, nil
	}
	detail, err := r.client().DescribeService(ctx, service.ARN)
	if err != nil {
		return ExitError, err
	}
	if err := r.out.Service(detail); err != nil {
		return ExitError, fmt.Errorf("describe service %s: %w", service.Name, err)
	}
	return ExitOK, nil
}

func (r *runner) whoami(ctx context.Context) (int, error) {
	id, err := awslib.CallerIdentity(ctx, r.deps.NewIdentityAPI(r.region.Config))
	if err != nil {
		return ExitError, err
	}
	r.out.Identity(id)
	return ExitOK, nil
}
