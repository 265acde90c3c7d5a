// internal/app/features/blog/comments.go
package blog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	commentstore "github.com/syneroa/platform/internal/app/store/comments"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/forms"
	"github.com/syneroa/platform/internal/app/system/htmlsanitize"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeComments handles GET /blog/{id}/comments: comments on one post,
// newest first.
func (h *Handler) ServeComments(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := commentstore.New(h.DB).ListByPost(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

type commentRequest struct {
	Content string `json:"content"`
}

// HandleComment handles POST /blog/{id}/comments. The author is the
// signed-in account; comment bodies are stored as sanitized text.
func (h *Handler) HandleComment(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}
	if err := forms.Required(forms.Field{Name: "content", Value: req.Content}); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
		return
	}

	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cm, err := commentstore.New(h.DB).Create(ctx, models.Comment{
		PostID:  oid,
		Author:  u.Name,
		Content: htmlsanitize.Sanitize(req.Content),
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusCreated, cm)
}

// HandleDeleteComment handles DELETE /blog/comments/{commentID}.
func (h *Handler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "commentID"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := commentstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	h.Audit.Record(ctx, r, "delete", "comment", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
