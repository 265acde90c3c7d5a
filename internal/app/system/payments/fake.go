// internal/app/system/payments/fake.go
package payments

import (
	"context"
	"fmt"
	"sync"
)

// FakeProcessor is an in-memory Processor for tests and local dev.
type FakeProcessor struct {
	mu      sync.Mutex
	seq     int
	intents map[string]Intent

	// FailCreate makes CreateIntent return this error when set.
	FailCreate error
}

func NewFakeProcessor() *FakeProcessor {
	return &FakeProcessor{intents: make(map[string]Intent)}
}

func (f *FakeProcessor) CreateIntent(_ context.Context, amountCents int64, currency string, metadata map[string]string) (Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailCreate != nil {
		return Intent{}, f.FailCreate
	}

	md := make(map[string]string, len(metadata))
	for k, v := range metadata {
		md[k] = v
	}

	f.seq++
	in := Intent{
		ID:           fmt.Sprintf("pi_fake_%d", f.seq),
		ClientSecret: fmt.Sprintf("pi_fake_%d_secret", f.seq),
		Status:       "requires_payment_method",
		AmountCents:  amountCents,
		Currency:     currency,
		Metadata:     md,
	}
	f.intents[in.ID] = in
	return in, nil
}

func (f *FakeProcessor) GetIntent(_ context.Context, id string) (Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	in, ok := f.intents[id]
	if !ok {
		return Intent{}, fmt.Errorf("no such intent %q", id)
	}
	return in, nil
}

// SetStatus moves an intent to the given status, simulating the
// client-side confirmation step.
func (f *FakeProcessor) SetStatus(id, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if in, ok := f.intents[id]; ok {
		in.Status = status
		f.intents[id] = in
	}
}
