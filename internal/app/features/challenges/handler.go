// internal/app/features/challenges/handler.go
package challenges

import (
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the challenge endpoints: the public listing the
// platform page renders and the admin CRUD behind it.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Audit *auditlog.Logger
}

// NewHandler constructs a challenges Handler bound to the given Mongo
// database and logger.
func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Audit: audit,
	}
}
