package cli

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"apprunnerctl/internal/apprunner"
	"apprunnerctl/internal/audit"
	awslib "apprunnerctl/internal/aws"
)

func (r *runner) deleteService(ctx context.Context) (code int, err error) {
	name := r.opts.Name
	auditLog, closeAudit, err := r.auditLogger()
	if err != nil {
		return ExitError, fmt.Errorf("open audit log: %w", err)
	}
	defer closeAuditLog(closeAudit, &code, &err)
	event := audit.Event{Action: string(ActionDelete), Region: r.region.Code, Service: name}

	id, err := awslib.CallerIdentity(ctx, r.deps.NewIdentityAPI(r.region.Config))
	if err != nil {
		r.log.WithError(err).Warn("caller identity unavailable for audit log")
	}
	event.Caller = id.ARN
	event.Account = id.Account

	service, found, err := r.client().FindService(ctx, name)
	if err != nil {
		return ExitError, r.failed(auditLog, event, err)
	}
	if !found {
		event.Outcome = audit.OutcomeNotFound
		auditLog.Log(event)
		r.out.NotFound(name, r.region.Code)
		return ExitOK, nil
	}
	event.ARN = service.ARN

	deletion, err := r.client().DeleteService(ctx, service.ARN)
	if apprunner.IsNotFound(err) {
		r.log.WithFields(log.Fields{"service": name, "arn": service.ARN}).Debug("service disappeared before delete")
		event.Outcome = audit.OutcomeNotFound
		event.Error = err.Error()
		auditLog.Log(event)
		r.out.NotFound(name, r.region.Code)
		return ExitOK, nil
	}
	if err != nil {
		return ExitError, r.failed(auditLog, event, err)
	}
	event.Outcome = audit.OutcomeSuccess
	auditLog.Log(event)
	r.out.Deleted(deletion, name)
	return ExitOK, nil
}

// refuse records an action the guard turned down.
func (r *runner) refuse(rule Rule, refused error) (code int, err error) {
	auditLog, closeAudit, err := r.auditLogger()
	if err != nil {
		return ExitError, fmt.Errorf("open audit log: %w", err)
	}
	defer closeAuditLog(closeAudit, &code, &err)
	auditLog.Log(audit.Event{
		Action:  string(rule.Action),
		Region:  r.region.Code,
		Service: r.opts.Name,
		Outcome: audit.OutcomeRefused,
		Error:   refused.Error(),
	})
	r.out.DeleteRefused(refused.Error())
	return ExitDeleteRefused, nil
}

func (r *runner) failed(auditLog *audit.Logger, event audit.Event, err error) error {
	event.Outcome = audit.OutcomeError
	event.Error = err.Error()
	auditLog.Log(event)
	return err
}

func (r *runner) auditLogger() (*audit.Logger, func() error, error) {
	if r.deps.Audit != nil {
		return r.deps.Audit, func() error { return nil }, nil
	}
	return audit.OpenFile(r.cfg.AuditLog)
}

func closeAuditLog(closeAudit func() error, code *int, err *error) {
	if cerr := closeAudit(); cerr != nil && *err == nil {
		*code, *err = ExitError, fmt.Errorf("close audit log: %w", cerr)
	}
}
