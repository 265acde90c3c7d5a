// internal/app/features/courses/routes.go
package courses

import (
	"github.com/go-chi/chi/v5"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
)

// Routes mounts the course routes under whatever base path the caller
// chooses (typically "/courses" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager, az *authz.Checker) chi.Router {
	r := chi.NewRouter()

	// Public: the published catalog.
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	// Enrollment requires a signed-in account.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/enrollments", h.ServeMyEnrollments)
		pr.Post("/{id}/enroll", h.HandleEnroll)
		pr.Post("/{id}/enroll/confirm", h.HandleConfirmEnroll)
	})

	// Admin: catalog management.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(az.RequireAdmin)

		pr.Get("/all", h.ServeListAll)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Post("/{id}/publish", h.HandlePublish)
		pr.Post("/{id}/unpublish", h.HandleUnpublish)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
