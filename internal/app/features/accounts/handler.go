// internal/app/features/accounts/handler.go
package accounts

import (
	"time"

	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// loginRateLimit caps login attempts per client IP per minute.
const loginRateLimit = 10

// Handler owns registration, login, logout, and the current-session
// endpoint the SPA polls on load.
type Handler struct {
	DB         *mongo.Database
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
	Audit      *auditlog.Logger
	Limiter    *ratelimit.Limiter
}

// NewHandler constructs an accounts Handler bound to the given Mongo
// database and session manager.
func NewHandler(db *mongo.Database, sm *auth.SessionManager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		SessionMgr: sm,
		Log:        logger,
		Audit:      audit,
		Limiter:    ratelimit.New(loginRateLimit, time.Minute),
	}
}

// accountVM is the slice of an account returned to the SPA. The
// password hash never leaves the store layer.
type accountVM struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
