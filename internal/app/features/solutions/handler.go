// internal/app/features/solutions/handler.go
package solutions

import (
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/app/system/filestore"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the solution endpoints: public submission with an
// optional PDF attachment, the approved-only public listing, and the
// admin review queue.
type Handler struct {
	DB    *mongo.Database
	Files filestore.Store
	Log   *zap.Logger
	Audit *auditlog.Logger
}

// NewHandler constructs a solutions Handler bound to the given Mongo
// database, file storage, and logger.
func NewHandler(db *mongo.Database, files filestore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Files: files,
		Log:   logger,
		Audit: audit,
	}
}
