// internal/app/features/courses/enroll.go
package courses

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	coursestore "github.com/syneroa/platform/internal/app/store/courses"
	enrollmentstore "github.com/syneroa/platform/internal/app/store/enrollments"
	"github.com/syneroa/platform/internal/app/system/apierrors"
	"github.com/syneroa/platform/internal/app/system/authz"
	"github.com/syneroa/platform/internal/app/system/payments"
	"github.com/syneroa/platform/internal/app/system/status"
	"github.com/syneroa/platform/internal/app/system/timeouts"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// enrollResponse is returned when a paid course needs payment before
// the enrollment completes. The SPA confirms the intent with the card
// details and then calls the confirm endpoint.
type enrollResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	AmountCents     int64  `json:"amountCents"`
}

// HandleEnroll handles POST /courses/{id}/enroll. Free courses enroll
// immediately; paid courses answer with a payment intent instead.
func (h *Handler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	courseID, accountID, ok := h.enrollIDs(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	co, err := coursestore.New(h.DB).GetByID(ctx, courseID)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	if co.Status != status.Published {
		apierrors.WriteError(w, h.Log, apierrors.Validation("course is not open for enrollment"))
		return
	}

	enrollments := enrollmentstore.New(h.DB)
	if exists, err := enrollments.Exists(ctx, courseID, accountID); err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	} else if exists {
		apierrors.WriteError(w, h.Log, apierrors.Validation("already enrolled in this course"))
		return
	}

	if co.Free() {
		h.completeEnrollment(ctx, w, r, co, accountID, "")
		return
	}

	intent, err := h.Payments.CreateIntent(ctx, amountCents(co.Price), "usd", map[string]string{
		payments.MetaCourseID:  co.ID.Hex(),
		payments.MetaAccountID: accountID.Hex(),
		"course_title":         co.Title,
		"account_email":        authz.UserEmail(r),
	})
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.Payment("could not start payment"))
		return
	}

	apierrors.WriteJSON(w, http.StatusOK, enrollResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     intent.AmountCents,
	})
}

type confirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

// HandleConfirmEnroll handles POST /courses/{id}/enroll/confirm. The
// enrollment is only written once the payment intent reports
// succeeded; anything else is a 402.
func (h *Handler) HandleConfirmEnroll(w http.ResponseWriter, r *http.Request) {
	courseID, accountID, ok := h.enrollIDs(w, r)
	if !ok {
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PaymentIntentID == "" {
		apierrors.WriteError(w, h.Log, apierrors.Validation("paymentIntentId is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	co, err := coursestore.New(h.DB).GetByID(ctx, courseID)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}

	_, err = payments.ConfirmFor(ctx, h.Payments, req.PaymentIntentID,
		co.ID.Hex(), accountID.Hex(), amountCents(co.Price))
	if err != nil {
		if errors.Is(err, payments.ErrNotSucceeded) || errors.Is(err, payments.ErrIntentMismatch) {
			apierrors.WriteError(w, h.Log, apierrors.Payment(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, apierrors.Payment("could not verify payment"))
		return
	}

	h.completeEnrollment(ctx, w, r, co, accountID, req.PaymentIntentID)
}

// completeEnrollment writes the enrollment record and bumps the
// course's student counter.
func (h *Handler) completeEnrollment(ctx context.Context, w http.ResponseWriter, r *http.Request, co models.Course, accountID primitive.ObjectID, intentID string) {
	enr, err := enrollmentstore.New(h.DB).Create(ctx, models.Enrollment{
		CourseID:        co.ID,
		AccountID:       accountID,
		PaymentIntentID: intentID,
	})
	if err != nil {
		if errors.Is(err, enrollmentstore.ErrAlreadyEnrolled) {
			apierrors.WriteError(w, h.Log, apierrors.Validation(err.Error()))
			return
		}
		apierrors.WriteError(w, h.Log, err)
		return
	}

	// Display counter only; a failed bump never undoes the enrollment.
	if _, err := coursestore.New(h.DB).AddStudent(ctx, co.ID); err != nil {
		h.Log.Warn("failed to bump course student count",
			zap.String("course_id", co.ID.Hex()),
			zap.Error(err))
	}

	h.Audit.Record(ctx, r, "enroll", "course", co.ID.Hex(), co.Title)
	apierrors.WriteJSON(w, http.StatusCreated, enr)
}

// ServeMyEnrollments handles GET /courses/enrollments: the signed-in
// account's enrollments.
func (h *Handler) ServeMyEnrollments(w http.ResponseWriter, r *http.Request) {
	_, _, accountID, ok := authz.UserCtx(r)
	if !ok {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid session"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := enrollmentstore.New(h.DB).ListByAccount(ctx, accountID)
	if err != nil {
		apierrors.WriteError(w, h.Log, err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, list)
}

// enrollIDs extracts the course id from the URL and the account id
// from the session.
func (h *Handler) enrollIDs(w http.ResponseWriter, r *http.Request) (courseID, accountID primitive.ObjectID, ok bool) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, h.Log, apierrors.ErrNotFound)
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	_, _, accountID, valid := authz.UserCtx(r)
	if !valid {
		apierrors.WriteError(w, h.Log, apierrors.Validation("invalid session"))
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return courseID, accountID, true
}

// amountCents converts a catalog price to cents for the payment
// processor, rounding to the nearest cent.
func amountCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
