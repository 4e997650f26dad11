package cli

import (
	"testing"

	"apprunnerctl/internal/policy"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want Action
	}{
		{"none", Options{}, ActionNone},
		{"listRegionsFirst", Options{ListRegions: true, List: true, Describe: true}, ActionListRegions},
		{"list", Options{List: true, Describe: true, Delete: true}, ActionList},
		{"describe", Options{Describe: true, Delete: true, Name: "web"}, ActionDescribe},
		{"delete", Options{Delete: true, WhoAmI: true}, ActionDelete},
		{"whoami", Options{WhoAmI: true}, ActionWhoAmI},
		{"nameAloneDoesNothing", Options{Name: "web"}, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plan(tt.opts).Action; got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRulesPreconditions(t *testing.T) {
	for _, rule := range Rules {
		switch rule.Action {
		case ActionListRegions:
			if rule.GateRegion {
				t.Fatalf("region listing must bypass the region gate")
			}
		case ActionDelete:
			if !rule.NeedsName || !rule.GateRegion || rule.Safety != policy.SafetyDestructive {
				t.Fatalf("unexpected %s rule: %#v", rule.Action, rule)
			}
			continue
		case ActionDescribe:
			if !rule.NeedsName || !rule.GateRegion {
				t.Fatalf("unexpected %s rule: %#v", rule.Action, rule)
			}
		default:
			if !rule.GateRegion {
				t.Fatalf("%s must be region gated", rule.Action)
			}
		}
		if rule.Safety != policy.SafetyReadOnly {
			t.Fatalf("%s must be read-only", rule.Action)
		}
	}
}
