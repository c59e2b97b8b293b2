package auditlog

import (
	auditlog_repo "instock/internal/auditlog"
	"instock/pkg/models"

	"go.uber.org/zap"
)

// Auditable is implemented by every model that wants its mutations recorded.
type Auditable interface {
	CreateLogView() models.AuditLog
}

type Auditlog struct {
	r      *auditlog_repo.AuditLogRepository
	logger *zap.Logger
}

func NewAuditLog(r *auditlog_repo.AuditLogRepository, logger *zap.Logger) *Auditlog {
	return &Auditlog{r: r, logger: logger}
}

// Log records an action against a resource. Failures are logged and
// swallowed; audit logging never blocks the mutation that triggered it.
func (a *Auditlog) Log(action string, data interface{}, item Auditable) {
	auditLog := item.CreateLogView()
	auditLog.Action = action

	if err := a.r.PersistLog(auditLog, data); err != nil {
		a.logger.Warn("unable to create audit log entry",
			zap.String("resource_id", auditLog.ResourceID),
			zap.Error(err))
		return
	}

	a.logger.Debug("created audit log entry",
		zap.String("resource_id", auditLog.ResourceID),
		zap.String("action", action))
}
