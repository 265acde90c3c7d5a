// internal/app/system/apierrors/apierrors.go
package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Sentinel errors handlers map platform failures onto. WriteError
// translates them to HTTP statuses:
//
//	ErrValidation  → 422
//	ErrNotFound    → 404
//	ErrPayment     → 402
//	ErrUnavailable → 503
var (
	ErrValidation  = errors.New("validation rejected")
	ErrNotFound    = errors.New("not found")
	ErrPayment     = errors.New("payment failed")
	ErrUnavailable = errors.New("store unavailable")
)

type errorBody struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto the API error taxonomy and writes a JSON
// error body. Unknown errors become 500s with a generic message so
// internals never leak to clients.
func WriteError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		WriteJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
	case errors.Is(err, ErrNotFound), errors.Is(err, mongo.ErrNoDocuments):
		WriteJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, ErrPayment):
		WriteJSON(w, http.StatusPaymentRequired, errorBody{Error: err.Error()})
	case errors.Is(err, ErrUnavailable):
		WriteJSON(w, http.StatusServiceUnavailable, errorBody{Error: "service unavailable"})
	default:
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) {
			// Store-level validation failures carry their message.
			WriteJSON(w, http.StatusUnprocessableEntity, errorBody{Error: cmdErr.Message})
			return
		}
		if log != nil {
			log.Error("request failed", zap.Error(err))
		}
		WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// Validation wraps a message in ErrValidation so WriteError renders a 422.
func Validation(msg string) error {
	return wrapped{sentinel: ErrValidation, msg: msg}
}

// Payment wraps a message in ErrPayment so WriteError renders a 402.
func Payment(msg string) error {
	return wrapped{sentinel: ErrPayment, msg: msg}
}

type wrapped struct {
	sentinel error
	msg      string
}

func (w wrapped) Error() string { return w.msg }
func (w wrapped) Unwrap() error { return w.sentinel }
