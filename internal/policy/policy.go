package policy

import (
	"errors"
	"fmt"
)

type Safety string

const (
	SafetyReadOnly    Safety = "read_only"
	SafetyDestructive Safety = "destructive"
)

var (
	ErrReadOnly     = errors.New("read_only is set in the configuration")
	ErrNotConfirmed = errors.New("confirmation required")
)

// RefusedError explains why an action was not allowed to run.
type RefusedError struct {
	Action string
	Target string
	Err    error
}

func (e *RefusedError) Error() string {
	if errors.Is(e.Err, ErrNotConfirmed) {
		return fmt.Sprintf("pass --yes to %s %s", e.Action, e.Target)
	}
	return e.Err.Error()
}

func (e *RefusedError) Unwrap() error {
	return e.Err
}

type Guard struct {
	ReadOnly bool
}

func NewGuard(readOnly bool) *Guard {
	return &Guard{ReadOnly: readOnly}
}

// Allow checks an action against the guard. Read-only actions always pass;
// destructive ones need a writable configuration and explicit confirmation.
func (g *Guard) Allow(safety Safety, action, target string, confirmed bool) error {
	if safety == SafetyReadOnly {
		return nil
	}
	if g.ReadOnly {
		return &RefusedError{Action: action, Target: target, Err: ErrReadOnly}
	}
	if !confirmed {
		return &RefusedError{Action: action, Target: target, Err: ErrNotConfirmed}
	}
	return nil
}
