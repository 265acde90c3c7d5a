// internal/app/features/adminpanel/routes.go
package adminpanel

import (
	"github.com/go-chi/chi/v5"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/authz"
)

// Routes mounts the admin panel routes under whatever base path the
// caller chooses (typically "/admin" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager, az *authz.Checker) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(az.RequireAdmin)

		pr.Get("/overview", h.ServeOverview)
		pr.Get("/stats", h.ServeStats)
		pr.Get("/audit", h.ServeAuditTrail)
	})

	return r
}
