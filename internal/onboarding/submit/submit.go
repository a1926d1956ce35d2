// Package submit assembles the final record from draft state, re-validates
// it, and writes it to the forms store exactly once per invocation.
package submit

import (
	"context"
	"log/slog"

	"onboard-gateway/internal/onboarding/forms"
	"onboard-gateway/internal/onboarding/schema"
	"onboard-gateway/internal/platform/metrics"
	dErrors "onboard-gateway/pkg/domainerrors"
)

// Coordinator performs the final submission. It makes at most one store
// write per call and never retries; a retry is always a fresh user action.
type Coordinator struct {
	forms   forms.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewCoordinator(store forms.Store, logger *slog.Logger, m *metrics.Metrics) *Coordinator {
	return &Coordinator{forms: store, logger: logger, metrics: m}
}

// Submit validates the full record and creates it in the forms store.
// The full validation pass is mandatory even though per-step validation
// already ran: it defends against a corrupted or tampered draft reaching the
// store. Validation failure never contacts the store.
func (c *Coordinator) Submit(ctx context.Context, state map[string]any) (string, error) {
	record, fieldErrs := schema.Validate(state)
	if len(fieldErrs) > 0 {
		if c.metrics != nil {
			c.metrics.SubmitFailures.WithLabelValues("validation").Inc()
		}
		return "", dErrors.NewValidation("record failed validation", fieldErrs)
	}

	id, err := c.forms.Create(ctx, record)
	if err != nil {
		c.logger.ErrorContext(ctx, "form store create failed", "error", err.Error())
		if c.metrics != nil {
			c.metrics.SubmitFailures.WithLabelValues("store").Inc()
		}
		return "", dErrors.New(dErrors.CodeStoreUnavailable, "form could not be stored, please try again")
	}

	if c.metrics != nil {
		c.metrics.FormsSubmitted.Inc()
	}
	return id, nil
}
