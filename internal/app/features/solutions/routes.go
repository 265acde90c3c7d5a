// internal/app/features/solutions/routes.go
package solutions

import (
	"github.com/go-chi/chi/v5"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
)

// Routes mounts the solution routes under whatever base path the
// caller chooses (typically "/solutions" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager, az *authz.Checker) chi.Router {
	r := chi.NewRouter()

	// Public: approved solutions and the submission form.
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleSubmit)

	// Admin: full queue including pending and rejected.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(az.RequireAdmin)

		pr.Get("/all", h.ServeListAll)
		pr.Post("/{id}/approve", h.HandleApprove)
		pr.Post("/{id}/reject", h.HandleReject)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
