package cli

import "apprunnerctl/internal/policy"

// Exit codes.
const (
	ExitOK                = 0
	ExitUnsupportedRegion = 1
	ExitNoServices        = 2
	ExitNameRequired      = 3
	ExitDeleteRefused     = 4
	ExitError             = 1
)

type Options struct {
	List        bool
	ListRegions bool
	Describe    bool
	Delete      bool
	Yes         bool
	WhoAmI      bool
	Name        string
	ReadOnly    bool

	ConfigPath string
	Profile    string
	Region     string
	LogLevel   string
}

type Action string

const (
	ActionNone        Action = "none"
	ActionListRegions Action = "list-regions"
	ActionList        Action = "list"
	ActionDescribe    Action = "describe"
	ActionDelete      Action = "delete"
	ActionWhoAmI      Action = "whoami"
)

// Rule is one row of the dispatch table.
type Rule struct {
	Action Action
	// Selected reports whether the flags ask for this action.
	Selected func(Options) bool
	// GateRegion means the action only runs in a supported region.
	GateRegion bool
	// NeedsName means --name must be set, else ExitNameRequired.
	NeedsName bool
	// Safety is checked against the guard; refusals exit ExitDeleteRefused.
	Safety policy.Safety
}

// Rules is evaluated top to bottom; the first selected row wins.
var Rules = []Rule{
	{Action: ActionListRegions, Selected: func(o Options) bool { return o.ListRegions }, Safety: policy.SafetyReadOnly},
	{Action: ActionList, Selected: func(o Options) bool { return o.List }, GateRegion: true, Safety: policy.SafetyReadOnly},
	{Action: ActionDescribe, Selected: func(o Options) bool { return o.Describe }, GateRegion: true, NeedsName: true, Safety: policy.SafetyReadOnly},
	{Action: ActionDelete, Selected: func(o Options) bool { return o.Delete }, GateRegion: true, NeedsName: true, Safety: policy.SafetyDestructive},
	{Action: ActionWhoAmI, Selected: func(o Options) bool { return o.WhoAmI }, GateRegion: true, Safety: policy.SafetyReadOnly},
	{Action: ActionNone, Selected: func(Options) bool { return true }, GateRegion: true, Safety: policy.SafetyReadOnly},
}

func Plan(opts Options) Rule {
	for _, rule := range Rules {
		if rule.Selected(opts) {
			return rule
		}
	}
	return Rules[len(Rules)-1]
}
