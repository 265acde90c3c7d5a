// internal/app/features/contact/contact.go
package contact

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	contactmessagestore "github.com/syneroa/platform/internal/app/store/contactmessages"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/forms"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type submitRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// HandleSubmit handles POST /contact: the public contact form. New
// messages always start unread.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	if err := forms.Required(
		forms.Field{Name: "firstName", Value: req.FirstName},
		forms.Field{Name: "email", Value: req.Email, Email: true},
		forms.Field{Name: "message", Value: req.Message},
	); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cm, err := contactmessagestore.New(h.DB).Create(ctx, models.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusCreated, cm)
}

// ServeList handles GET /contact: the admin inbox, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := contactmessagestore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// HandleMarkRead handles POST /contact/{id}/read. Marking an already
// read message read again is a no-op.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := contactmessagestore.New(h.DB)
	if err := store.MarkRead(ctx, oid); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	cm, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "mark_read", "contact_message", oid.Hex(), cm.Subject)
	apierrors.WriteJSON(w, http.StatusOK, cm)
}

// HandleDelete handles DELETE /contact/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := contactmessagestore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "contact_message", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
