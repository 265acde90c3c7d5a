// internal/app/features/solutions/submit.go
package solutions

import (
	"context"
	"net/http"
	"strings"

	challengestore "github.com/syneroa/platform/internal/app/store/challenges"
	solutionstore "github.com/syneroa/platform/internal/app/store/solutions"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/filestore"
	"github.com/syneroa/platform/internal/app/system/forms"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleSubmit handles POST /solutions: a multipart form with the
// solution fields and an optional PDF attachment. New solutions always
// start pending regardless of any status the form carries.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(filestore.MaxPDFBytes); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid form data"))
		return
	}

	sol := models.Solution{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Author:      r.FormValue("author"),
		University:  r.FormValue("university"),
		Category:    r.FormValue("category"),
		Tags:        splitTags(r.FormValue("tags")),
	}

	if err := forms.Required(
		forms.Field{Name: "title", Value: sol.Title},
		forms.Field{Name: "description", Value: sol.Description},
		forms.Field{Name: "author", Value: sol.Author},
	); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
		return
	}

	if hex := r.FormValue("challengeId"); hex != "" {
		oid, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			apierrors.WriteError(w, h.Log, apierrors.Validation("invalid challenge id"))
			return
		}
		sol.ChallengeID = &oid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Store the attachment first so the record never points at a file
	// that failed to upload.
	if file, header, err := r.FormFile("pdf"); err == nil {
		defer file.Close()
		url, saveErr := h.Files.SavePDF(ctx, header.Filename, file, header.Size)
		if saveErr != nil {
			apierrors.WriteError(w, h.Log, apierrors.Validation(saveErr.Error()))
			return
		}
		sol.PDFURL = url
	}

	created, err := solutionstore.New(h.DB).Create(ctx, sol)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	// Bump the challenge participant counter. Best effort: the
	// submission already succeeded, so a failed bump is only logged.
	if created.ChallengeID != nil {
		if _, err := challengestore.New(h.DB).AddParticipant(ctx, *created.ChallengeID); err != nil {
			h.Log.Warn("failed to bump challenge participants",
				zap.String("challenge_id", created.ChallengeID.Hex()),
				zap.Error(err))
		}
	}

	apierrors.WriteJSON(w, http.StatusCreated, created)
}

// splitTags turns the comma-separated tags field into a slice,
// dropping blanks.
func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
