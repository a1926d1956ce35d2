// Package wizard is the onboarding state machine: the step sequence, the
// completeness gate guarding entry to later steps, and the merge of step
// submissions into the persisted draft.
package wizard

import (
	"context"
	"fmt"
	"log/slog"

	"onboard-gateway/internal/onboarding/draft"
	"onboard-gateway/internal/onboarding/schema"
	"onboard-gateway/internal/platform/metrics"
)

// Submitter performs the final submission of a complete draft.
type Submitter interface {
	Submit(ctx context.Context, state map[string]any) (string, error)
}

// Machine drives a draft through the step sequence
// personal -> additional -> consent -> submitted.
type Machine struct {
	drafts    draft.Store
	submitter Submitter
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewMachine(drafts draft.Store, submitter Submitter, logger *slog.Logger, m *metrics.Metrics) *Machine {
	return &Machine{drafts: drafts, submitter: submitter, logger: logger, metrics: m}
}

// EnterResult describes what a step entry should show: either a redirect to
// an earlier step, or the step's current values pre-populated from the draft.
type EnterResult struct {
	Step     Step
	Redirect Step
	Values   map[string]any
}

// AdvanceResult describes the outcome of a step submission: field errors on
// the same step, a redirect when the gate fails, or the next step (with the
// created form ID when the final step succeeds).
type AdvanceResult struct {
	Step        Step
	Redirect    Step
	FieldErrors []schema.FieldError
	FormID      string
}

// truthy mirrors the existence check the completeness gate performs: a field
// counts as filled in when it is a non-empty string, a true boolean, or a
// non-zero number.
func truthy(v any) bool {
	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case nil:
		return false
	default:
		return true
	}
}

// gate checks that every required field of all groups prior to step is
// present and truthy in the draft. This is a cheap existence check, not a
// schema validation; it exists to keep users off steps their draft cannot
// support, not to enforce formats mid-flow.
func gate(state map[string]any, step Step) bool {
	for _, field := range requiredBefore(step) {
		if !truthy(state[field]) {
			return false
		}
	}
	return true
}

// Enter loads the draft and gates entry to the step. On a gate failure the
// caller is redirected to the personal step. On success the step's fields
// are returned pre-populated from the draft with per-field defaults filled
// in, so partial progress is never lost when revisiting a step.
func (m *Machine) Enter(ctx context.Context, draftID string, step Step) (EnterResult, error) {
	state, err := m.drafts.Load(ctx, draftID)
	if err != nil {
		return EnterResult{}, fmt.Errorf("enter %s: %w", step, err)
	}

	if !gate(state, step) {
		return EnterResult{Step: step, Redirect: StepPersonal}, nil
	}

	if step == StepSubmitted {
		return EnterResult{Step: StepSubmitted}, nil
	}

	values := make(map[string]any, len(stepFields[step]))
	for _, field := range stepFields[step] {
		if v, ok := state[field]; ok {
			values[field] = v
			continue
		}
		values[field] = defaultFor(field)
	}
	return EnterResult{Step: step, Values: values}, nil
}

// Advance validates a step submission against the step's field subset,
// merges it into the draft, and moves forward. The consent step additionally
// hands the merged draft to the submitter; only a successful submission
// reaches the submitted state. On submission failure the consent flag stays
// merged, so a retry does not require re-checking the box.
func (m *Machine) Advance(ctx context.Context, draftID string, step Step, payload map[string]any) (AdvanceResult, error) {
	state, err := m.drafts.Load(ctx, draftID)
	if err != nil {
		return AdvanceResult{}, fmt.Errorf("advance %s: %w", step, err)
	}
	if !gate(state, step) {
		return AdvanceResult{Step: step, Redirect: StepPersonal}, nil
	}

	// Only the step's own fields may be merged; anything else in the
	// payload is dropped rather than smuggled into the draft.
	stepData := make(map[string]any, len(stepFields[step]))
	for _, field := range stepFields[step] {
		if v, ok := payload[field]; ok {
			stepData[field] = v
		}
	}

	if _, fieldErrs := schema.Validate(stepData, stepFields[step]...); len(fieldErrs) > 0 {
		return AdvanceResult{Step: step, FieldErrors: fieldErrs}, nil
	}

	if err := m.drafts.Merge(ctx, draftID, stepData); err != nil {
		return AdvanceResult{}, fmt.Errorf("merge %s: %w", step, err)
	}

	if step == StepConsent {
		merged, err := m.drafts.Load(ctx, draftID)
		if err != nil {
			return AdvanceResult{}, fmt.Errorf("load merged draft: %w", err)
		}
		formID, err := m.submitter.Submit(ctx, merged)
		if err != nil {
			// Remain on consent; the merged draft keeps the consent flag.
			return AdvanceResult{}, err
		}
		if m.metrics != nil {
			m.metrics.StepAdvances.WithLabelValues(string(step)).Inc()
		}
		m.logger.InfoContext(ctx, "onboarding submitted", "draft_id", draftID, "form_id", formID)
		return AdvanceResult{Step: StepSubmitted, FormID: formID}, nil
	}

	if m.metrics != nil {
		m.metrics.StepAdvances.WithLabelValues(string(step)).Inc()
	}
	return AdvanceResult{Step: next(step)}, nil
}

// Reset clears the draft and returns the flow to the personal step. Resetting
// an already empty draft is a no-op.
func (m *Machine) Reset(ctx context.Context, draftID string) error {
	if err := m.drafts.Clear(ctx, draftID); err != nil {
		return fmt.Errorf("reset draft: %w", err)
	}
	if m.metrics != nil {
		m.metrics.DraftsCleared.Inc()
	}
	return nil
}
