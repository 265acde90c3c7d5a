// internal/app/features/capstones/handler.go
package capstones

import (
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the capstone project endpoints: public submission, the
// approved showcase, and the admin review queue.
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
