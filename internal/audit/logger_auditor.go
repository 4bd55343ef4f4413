// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"
	"riseup/internal/logging"
	"riseup/internal/services"

	"github.com/sirupsen/logrus"
)

// Ensure LoggerAuditor implements services.Auditor
var _ services.Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor writes audit events to a logrus logger.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates a LoggerAuditor writing to the application log.
func NewLoggerAuditor(enabled bool) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled}
}

// NewLoggerAuditorWithLogger creates a LoggerAuditor writing to logger.
func NewLoggerAuditorWithLogger(enabled bool, logger *logrus.Logger) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled, logger: logger}
}

// Log records an event if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}
	if id := logging.RequestID(ctx); id != "" {
		fields["request_id"] = id
	}
	for k, v := range details {
		fields["detail."+k] = v
	}

	logger := a.logger
	if logger == nil {
		logger = logging.Log
	}
	// Fixed message so audit lines are easy to grep.
	logger.WithFields(fields).Info("AUDIT EVENT")
}
