// internal/app/features/accounts/login.go
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	accountstore "github.com/syneroa/platform/internal/app/store/accounts"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/auth"
	"github.com/syneroa/platform/internal/app/system/ratelimit"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorBody struct {
	Error string `json:"error"`
}

// HandleLogin handles POST /auth/login. A bad email and a bad password
// produce the same response so the endpoint cannot be used to probe
// which emails have accounts.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ClientIP(r)
	if !h.Limiter.Allow(ip) {
		h.Log.Warn("login rate limited", zap.String("ip", ip))
		apierrors.WriteJSON(w, http.StatusTooManyRequests, errorBody{Error: "too many login attempts, try again shortly"})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := accountstore.New(h.DB).GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apierrors.WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid email or password"})
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		apierrors.WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid email or password"})
		return
	}

	if acct.Status == status.Disabled {
		apierrors.WriteJSON(w, http.StatusForbidden, errorBody{Error: "account is disabled"})
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

	h.Limiter.Reset(ip)
	h.Log.Info("account signed in", zap.String("account_id", acct.ID.Hex()))

	apierrors.WriteJSON(w, http.StatusOK, accountVM{
		ID:    acct.ID.Hex(),
		Name:  acct.Name,
		Email: acct.Email,
		Role:  acct.Role,
	})
}

// HandleLogout handles POST /auth/logout.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ServeSession handles GET /auth/session: the SPA's "who am I" call.
func (h *Handler) ServeSession(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		apierrors.WriteJSON(w, http.StatusUnauthorized, errorBody{Error: "not signed in"})
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, accountVM{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	})
}
