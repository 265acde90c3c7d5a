// internal/app/features/adminpanel/handler.go
package adminpanel

import (
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the admin panel overview: every collection loaded
// concurrently, headline stats, and the recent audit trail.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Audit *auditlog.Logger
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Audit: audit,
	}
}
