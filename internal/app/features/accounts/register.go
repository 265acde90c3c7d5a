// internal/app/features/accounts/register.go
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	accountstore "github.com/syneroa/platform/internal/app/store/accounts"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/forms"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost used across the platform for password
// hashing.
const bcryptCost = 12

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister handles POST /auth/register. A successful signup also
// signs the new account in.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	if err := forms.Required(
		forms.Field{Name: "name", Value: req.Name},
		forms.Field{Name: "email", Value: req.Email, Email: true},
		forms.Field{Name: "password", Value: req.Password},
	); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
		return
	}
	if len(req.Password) < 8 {
		apierrors.WriteError(w, h.Log, apierrors.Validation("password must be at least 8 characters"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	acct, err := accountstore.New(h.DB).Create(ctx, models.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, accountstore.ErrDuplicateEmail) {
			apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    acct.ID.Hex(),
		Name:  acct.Name,
		Email: acct.Email,
		Role:  acct.Role,
	}); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	apierrors.WriteJSON(w, http.StatusCreated, accountVM{
		ID:    acct.ID.Hex(),
		Name:  acct.Name,
		Email: acct.Email,
		Role:  acct.Role,
	})
}
