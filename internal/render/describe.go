package render

import (
	"apprunnerctl/internal/apprunner"
)

const timestampLayout = "2006-01-02 15:04:05"

// Service prints the detail view of one service. CPU and memory are
// converted before anything is written, so a bad value prints nothing.
func (r *Renderer) Service(detail apprunner.ServiceDetail) error {
	cores, err := apprunner.Cores(detail.CPU)
	if err != nil {
		return err
	}
	memory, err := apprunner.MemoryMB(detail.Memory)
	if err != nil {
		return err
	}
	r.printf("Service Name: %s\n", detail.Name)
	r.printf("Service ARN: %s\n", detail.ARN)
	r.printf("Service URL: https://%s:%s\n", detail.URL, detail.Port)
	r.printf("System Resources: %s CPUs / %sMB RAM\n", cores, memory)
	r.printf("Service created at: %s UTC\n", detail.CreatedAt.UTC().Format(timestampLayout))
	if detail.Status != "" {
		r.printf("Service Status: %s\n", detail.Status)
	}
	if detail.Source != "" {
		r.printf("Service Source: %s\n", detail.Source)
	}
	return nil
}
