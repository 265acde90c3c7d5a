// internal/app/features/courses/admin.go
package courses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	coursestore "github.com/syneroa/platform/internal/app/store/courses"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// courseRequest is the admin create/edit payload. Price is in the
// catalog currency; zero or negative means free.
type courseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Level       string  `json:"level"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Status      string  `json:"status"`
}

// HandleCreate handles POST /courses.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	co, err := coursestore.New(h.DB).Create(ctx, models.Course{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Price:       req.Price,
		Duration:    req.Duration,
		Level:       req.Level,
		Category:    req.Category,
		Image:       req.Image,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, coursestore.ErrDuplicateTitle) {
			apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "create", "course", co.ID.Hex(), co.Title)
	apierrors.WriteJSON(w, http.StatusCreated, co)
}

// HandleUpdate handles PUT /courses/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := coursestore.New(h.DB)
	err = store.Update(ctx, oid, models.Course{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Price:       req.Price,
		Duration:    req.Duration,
		Level:       req.Level,
		Category:    req.Category,
		Image:       req.Image,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, coursestore.ErrDuplicateTitle) {
			apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	co, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "update", "course", oid.Hex(), co.Title)
	apierrors.WriteJSON(w, http.StatusOK, co)
}

// HandlePublish handles POST /courses/{id}/publish.
func (h *Handler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Published)
}

// HandleUnpublish handles POST /courses/{id}/unpublish. Unpublishing
// is always allowed; existing enrollments are untouched.
func (h *Handler) HandleUnpublish(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, status.Draft)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, v string) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := coursestore.New(h.DB)
	if err := store.SetStatus(ctx, oid, v); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	co, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, v, "course", oid.Hex(), co.Title)
	apierrors.WriteJSON(w, http.StatusOK, co)
}

// HandleDelete handles DELETE /courses/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := coursestore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "course", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
