// internal/app/features/blog/posts.go
package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	blogpoststore "github.com/syneroa/platform/internal/app/store/blogposts"
	commentstore "github.com/syneroa/platform/internal/app/store/comments"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/htmlsanitize"
	"github.com/syneroa/platform/internal/app/system/listview"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type listResponse struct {
	Posts      []models.BlogPost `json:"posts"`
	Categories []string          `json:"categories"`
}

// ServeList handles GET /blog: published posts, filterable by category
// and free-text search.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := blogpoststore.New(h.DB).ListPublished(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	filtered := listview.Filter(list,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"))

	apierrors.WriteJSON(w, http.StatusOK, listResponse{
		Posts:      filtered,
		Categories: listview.Categories(list),
	})
}

// ServeListAll handles GET /blog/all: every post including drafts, for
// the admin panel.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := blogpoststore.New(h.DB).ListAll(ctx)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// ServeGet handles GET /blog/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := blogpoststore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if p.Status != status.Published {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, p)
}

// postRequest is the admin create/edit payload.
type postRequest struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
	Status   string   `json:"status"`
}

// HandleCreate handles POST /blog. Post content is sanitized before it
// is stored.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := blogpoststore.New(h.DB).Create(ctx, models.BlogPost{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  htmlsanitize.Sanitize(req.Content),
		Author:   req.Author,
		Category: req.Category,
		Tags:     req.Tags,
		Image:    req.Image,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, blogpoststore.ErrDuplicateTitle) {
			apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "create", "blog_post", p.ID.Hex(), p.Title)
	apierrors.WriteJSON(w, http.StatusCreated, p)
}

// HandleUpdate handles PUT /blog/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := blogpoststore.New(h.DB)
	err = store.Update(ctx, oid, models.BlogPost{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  htmlsanitize.Sanitize(req.Content),
		Author:   req.Author,
		Category: req.Category,
		Tags:     req.Tags,
		Image:    req.Image,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, blogpoststore.ErrDuplicateTitle) {
			apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	p, err := store.GetByID(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	h.Audit.Record(ctx, r, "update", "blog_post", oid.Hex(), p.Title)
	apierrors.WriteJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /blog/{id}. Deleting a post also drops
// its comments.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := blogpoststore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if n == 0 {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return
	}

	if _, err := commentstore.New(h.DB).DeleteByPost(ctx, oid); err != nil {
		h.Log.Warn("failed to delete comments for removed post",
			zap.String("post_id", oid.Hex()),
			zap.Error(err))
	}

	h.Audit.Record(ctx, r, "delete", "blog_post", oid.Hex(), "")
	w.WriteHeader(http.StatusNoContent)
}
