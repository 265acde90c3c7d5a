// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	auditstore "github.com/syneroa/platform/internal/app/store/audit"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/domain/models"
	"go.uber.org/zap"
)

// Logger records admin actions to both MongoDB (via auditstore.Store)
// and structured logs. Recording is best-effort: a store failure is
// logged and swallowed so it never breaks the action that triggered it.
type Logger struct {
	store  *auditstore.Store
	zapLog *zap.Logger
}

// New creates a new audit Logger. A nil Logger is a safe no-op, which
// lets handler tests skip audit wiring entirely.
func New(store *auditstore.Store, zapLog *zap.Logger) *Logger {
	return &Logger{store: store, zapLog: zapLog}
}

// Record writes one audit event. The actor is taken from the request's
// session user, falling back to "system" for background work.
func (l *Logger) Record(ctx context.Context, r *http.Request, action, entity, entityID, detail string) {
	if l == nil {
		return
	}

	actor := "system"
	if r != nil {
		if u, ok := auth.CurrentUser(r); ok {
			actor = u.Email
		}
	}

	l.zapLog.Info("audit event",
		zap.Bool("audit", true),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("entity", entity),
		zap.String("entity_id", entityID),
	)

	err := l.store.Create(ctx, models.AuditEvent{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	})
	if err != nil {
		l.zapLog.Error("failed to store audit event",
			zap.Error(err),
			zap.String("action", action),
			zap.String("entity", entity),
		)
	}
}
