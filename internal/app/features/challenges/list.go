// internal/app/features/challenges/list.go
package challenges

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	challengestore "github.com/syneroa/platform/internal/app/store/challenges"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /challenges: the active challenges shown on the
// public platform page, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := challengestore.New(h.DB).ListActive(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeListAll handles GET /challenges/all: every challenge, for the
// admin panel.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := challengestore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /challenges/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ch, err := challengestore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, ch)
}
