// internal/app/features/blog/handler.go
package blog

import (
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the blog endpoints: the published post listing, post
// detail with comments, commenting, and the admin post CRUD.
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
