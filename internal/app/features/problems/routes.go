// internal/app/features/problems/routes.go
package problems

import (
	"github.com/go-chi/chi/v5"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
)

// Routes mounts the problem routes under whatever base path the caller
// chooses (typically "/problems" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager, az *authz.Checker) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Post("/", h.HandleSubmit)

	// Voting requires a signed-in account.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Post("/{id}/upvote", h.HandleUpvote)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(az.RequireAdmin)

		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
