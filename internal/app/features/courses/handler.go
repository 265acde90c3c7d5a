// internal/app/features/courses/handler.go
package courses

import (
	"github.com/syneroa/platform/internal/app/system/auditlog"
	"github.com/syneroa/platform/internal/app/system/payments"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the course endpoints: the public catalog, the admin
// CRUD and publish toggle, and the enrollment flow. Free courses
// enroll directly; paid courses go through the payment processor.
type Handler struct {
	DB       *mongo.Database
	Payments payments.Processor
	Log      *zap.Logger
	Audit    *auditlog.Logger
}

// NewHandler constructs a courses Handler bound to the given Mongo
// database, payment processor, and logger.
func NewHandler(db *mongo.Database, proc payments.Processor, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Payments: proc,
		Log:      logger,
		Audit:    audit,
	}
}
