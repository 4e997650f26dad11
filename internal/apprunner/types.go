package apprunner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ServiceSummary struct {
	Name   string
	ID     string
	ARN    string
	URL    string
	Status string
}

type ServiceDetail struct {
	Name      string
	ARN       string
	URL       string
	Port      string
	CPU       string
	Memory    string
	CreatedAt time.Time
	Status    string
	Source    string
}

// Deletion describes an accepted DeleteService request.
type Deletion struct {
	Service     ServiceSummary
	OperationID string
}

// MalformedResponseError reports a provider response missing a field the
// tool relies on.
type MalformedResponseError struct {
	Operation string
	Field     string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: missing %s", e.Operation, e.Field)
}

func IsMalformed(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

// Cores converts the instance CPU setting to whole vCPUs, truncating.
// App Runner reports CPU in units of 1/1024 vCPU ("2048") or as a label
// ("2 vCPU").
func Cores(cpu string) (string, error) {
	cpu = strings.TrimSpace(cpu)
	if label, ok := strings.CutSuffix(strings.ToLower(cpu), "vcpu"); ok {
		value, err := strconv.ParseFloat(strings.TrimSpace(label), 64)
		if err != nil {
			return "", fmt.Errorf("parse cpu %q: %w", cpu, err)
		}
		return strconv.FormatInt(int64(value), 10), nil
	}
	units, err := strconv.ParseInt(cpu, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse cpu %q: %w", cpu, err)
	}
	return strconv.FormatInt(units/1024, 10), nil
}

// MemoryMB converts the instance memory setting to megabytes. Numeric values
// are already megabytes; "<n> GB" labels are scaled.
func MemoryMB(memory string) (string, error) {
	memory = strings.TrimSpace(memory)
	if label, ok := strings.CutSuffix(strings.ToLower(memory), "gb"); ok {
		value, err := strconv.ParseFloat(strings.TrimSpace(label), 64)
		if err != nil {
			return "", fmt.Errorf("parse memory %q: %w", memory, err)
		}
		return strconv.FormatFloat(value*1024, 'f', -1, 64), nil
	}
	if _, err := strconv.ParseFloat(memory, 64); err != nil {
		return "", fmt.Errorf("parse memory %q: %w", memory, err)
	}
	return memory, nil
}
