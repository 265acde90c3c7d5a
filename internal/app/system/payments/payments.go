// internal/app/system/payments/payments.go

// Package payments gates paid-course enrollment. Free courses never
// touch this package; paid enrollment creates an intent, the client
// confirms it with the card details, and enrollment only completes
// once the intent reports succeeded.
package payments

import (
	"context"
	"errors"
)

// ErrNotSucceeded is returned by Confirm when the payment intent
// exists but has not reached the succeeded state.
var ErrNotSucceeded = errors.New("payment has not succeeded")

// ErrIntentMismatch is returned by ConfirmFor when a succeeded intent
// was created for a different course, account, or amount.
var ErrIntentMismatch = errors.New("payment does not match this enrollment")

// Intent is the slice of a payment intent the enrollment flow needs.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountCents  int64
	Currency     string
	Metadata     map[string]string
}

// Succeeded reports whether the intent completed successfully.
func (i Intent) Succeeded() bool { return i.Status == "succeeded" }

// Processor creates and verifies payment intents.
type Processor interface {
	// CreateIntent opens a payment for the given amount. Metadata keys
	// travel to the payment provider for reconciliation.
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (Intent, error)
	// GetIntent fetches the current state of an intent.
	GetIntent(ctx context.Context, id string) (Intent, error)
}

// Confirm fetches the intent and fails unless it has succeeded.
func Confirm(ctx context.Context, p Processor, intentID string) (Intent, error) {
	in, err := p.GetIntent(ctx, intentID)
	if err != nil {
		return Intent{}, err
	}
	if !in.Succeeded() {
		return in, ErrNotSucceeded
	}
	return in, nil
}

// ConfirmKeys names the metadata set at intent creation that ties an
// intent to the enrollment it pays for.
const (
	MetaCourseID  = "course_id"
	MetaAccountID = "account_id"
)

// ConfirmFor fetches the intent and fails unless it succeeded AND was
// created for the given course, account, and amount. A succeeded
// intent for some other enrollment cannot be replayed here.
func ConfirmFor(ctx context.Context, p Processor, intentID, courseID, accountID string, amountCents int64) (Intent, error) {
	in, err := Confirm(ctx, p, intentID)
	if err != nil {
		return in, err
	}
	if in.Metadata[MetaCourseID] != courseID ||
		in.Metadata[MetaAccountID] != accountID ||
		in.AmountCents != amountCents {
		return in, ErrIntentMismatch
	}
	return in, nil
}
