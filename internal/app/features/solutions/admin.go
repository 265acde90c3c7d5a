// internal/app/features/solutions/admin.go
package solutions

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	solutionstore "github.com/syneroa/platform/internal/app/store/solutions"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleApprove handles POST /solutions/{id}/approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Approved)
}

// HandleReject handles POST /solutions/{id}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Rejected)
}

// setStatus overwrites the review status. Transitions are not checked
// against the current value: a rejected solution can still be approved.
func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, v string) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := solutionstore.New(h.DB)
	if err := store.SetStatus(ctx, oid, v); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	sol, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, v, "solution", oid.Hex(), sol.Title)
	apierrors.WriteJSON(w, http.StatusOK, sol)
}

// HandleDelete handles DELETE /solutions/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := solutionstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "solution", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
