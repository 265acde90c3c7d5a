// internal/app/features/contact/handler.go
package contact

import (
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the contact form endpoints and the admin inbox.
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
