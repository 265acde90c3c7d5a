// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/syneroa/platform/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Checker answers role questions about the current request. AdminEmail
// is an escape hatch: the configured address is treated as an admin
// even when the stored role says otherwise, so the first operator can
// reach the panel before any role has been granted.
type Checker struct {
	AdminEmail string
}

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a found flag.
// If no user is present in context or the user ID is malformed, it returns
// "visitor", "", NilObjectID, false. This ensures callers can trust that
// ok=true means a valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsAdmin reports whether the current request's user is an admin,
// either by role or by matching the configured admin email.
func (c *Checker) IsAdmin(r *http.Request) bool {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return false
	}
	if strings.ToLower(user.Role) == "admin" {
		return true
	}
	return c.AdminEmail != "" && strings.EqualFold(user.Email, c.AdminEmail)
}

// RequireAdmin rejects non-admin requests: 401 when not signed in,
// 403 when signed in without admin rights.
func (c *Checker) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); !ok {
			auth.WriteUnauthorized(w)
			return
		}
		if !c.IsAdmin(r) {
			auth.WriteForbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserEmail returns the signed-in user's email, or "" when anonymous.
func UserEmail(r *http.Request) string {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return ""
	}
	return user.Email
}
