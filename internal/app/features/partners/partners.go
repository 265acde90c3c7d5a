// internal/app/features/partners/partners.go
package partners

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	partnerappstore "github.com/syneroa/platform/internal/app/store/partnerapps"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/forms"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type applyRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Type         string `json:"type"`
	Message      string `json:"message"`
}

// HandleApply handles POST /partners: the public partnership form.
// New applications always start pending.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	if err := forms.Required(
		forms.Field{Name: "name", Value: req.Name},
		forms.Field{Name: "email", Value: req.Email, Email: true},
		forms.Field{Name: "organization", Value: req.Organization},
	); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pa, err := partnerappstore.New(h.DB).Create(ctx, models.PartnerApplication{
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		Type:         req.Type,
		Message:      req.Message,
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusCreated, pa)
}

// ServeList handles GET /partners: the admin application queue.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := partnerappstore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// HandleApprove handles POST /partners/{id}/approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Approved)
}

// HandleReject handles POST /partners/{id}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Rejected)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, v string) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := partnerappstore.New(h.DB)
	if err := store.SetStatus(ctx, oid, v); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	pa, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, v, "partner_application", oid.Hex(), pa.Organization)
	apierrors.WriteJSON(w, http.StatusOK, pa)
}

// HandleDelete handles DELETE /partners/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := partnerappstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "partner_application", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
