// Package handler is the thin HTTP layer over the wizard. It owns draft ID
// plumbing (header or cookie) and response envelopes; all flow rules live in
// the wizard package.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"onboard-gateway/internal/onboarding/catalog"
	"onboard-gateway/internal/onboarding/wizard"
	"onboard-gateway/internal/platform/metrics"
	"onboard-gateway/internal/platform/middleware"
	dErrors "onboard-gateway/pkg/domainerrors"
)

const (
	draftHeader    = "X-Draft-ID"
	draftCookie    = "onboarding_draft"
	draftCookieAge = 7 * 24 * time.Hour
)

// Wizard defines the state machine operations the handler depends on.
type Wizard interface {
	Enter(ctx context.Context, draftID string, step wizard.Step) (wizard.EnterResult, error)
	Advance(ctx context.Context, draftID string, step wizard.Step, payload map[string]any) (wizard.AdvanceResult, error)
	Reset(ctx context.Context, draftID string) error
}

// Handler serves the onboarding wizard endpoints.
type Handler struct {
	logger  *slog.Logger
	wizard  Wizard
	metrics *metrics.Metrics
}

// New creates a new onboarding Handler.
func New(w Wizard, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, wizard: w, metrics: m}
}

// Register registers the onboarding routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	onboardingRouter := chi.NewRouter()
	onboardingRouter.Use(middleware.Recovery(h.logger))
	onboardingRouter.Use(middleware.RequestID)
	onboardingRouter.Use(middleware.Logger(h.logger))
	onboardingRouter.Use(middleware.Timeout(30 * time.Second))
	onboardingRouter.Use(middleware.ContentTypeJSON)
	onboardingRouter.Use(middleware.LatencyMiddleware(h.metrics))
	onboardingRouter.Get("/onboarding/catalog", h.handleCatalog)
	onboardingRouter.Get("/onboarding/steps/{step}", h.handleEnterStep)
	onboardingRouter.Post("/onboarding/steps/{step}", h.handleAdvanceStep)
	onboardingRouter.Post("/onboarding/reset", h.handleReset)
	onboardingRouter.Get("/onboarding/success", h.handleSuccess)

	r.Mount("/", onboardingRouter)
}

// draftID resolves the caller's draft ID from the X-Draft-ID header or the
// onboarding_draft cookie, minting a fresh one when absent. The ID is always
// echoed on the response so thin clients can persist it either way.
func (h *Handler) draftID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(draftHeader)
	if id == "" {
		if c, err := r.Cookie(draftCookie); err == nil {
			id = c.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     draftCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   int(draftCookieAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	w.Header().Set(draftHeader, id)
	return id
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]catalog.Option{
		"titles":              catalog.Titles,
		"genders":             catalog.Genders,
		"maritalStatuses":     catalog.MaritalStatuses,
		"countries":           catalog.Countries,
		"nationalities":       catalog.Nationalities,
		"immigrationStatuses": catalog.ImmigrationStatuses,
		"tenancyTypes":        catalog.TenancyTypes,
	})
}

func (h *Handler) handleEnterStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	step, err := wizard.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		writeError(w, err)
		return
	}
	draftID := h.draftID(w, r)

	res, err := h.wizard.Enter(ctx, draftID, step)
	if err != nil {
		h.logger.ErrorContext(ctx, "step entry failed",
			"request_id", middleware.GetRequestID(ctx),
			"step", string(step),
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "failed to load draft"))
		return
	}

	if res.Redirect != "" {
		writeJSON(w, http.StatusOK, stepResponse{Redirect: string(res.Redirect)})
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{Step: string(res.Step), Values: res.Values})
}

func (h *Handler) handleAdvanceStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	step, err := wizard.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		writeError(w, err)
		return
	}
	draftID := h.draftID(w, r)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.WarnContext(ctx, "invalid step payload",
			"request_id", middleware.GetRequestID(ctx),
			"step", string(step),
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	res, err := h.wizard.Advance(ctx, draftID, step, payload)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeValidation) || dErrors.Is(err, dErrors.CodeStoreUnavailable) {
			writeError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "step advance failed",
			"request_id", middleware.GetRequestID(ctx),
			"step", string(step),
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "failed to advance step"))
		return
	}

	switch {
	case res.Redirect != "":
		writeJSON(w, http.StatusOK, stepResponse{Redirect: string(res.Redirect)})
	case len(res.FieldErrors) > 0:
		writeError(w, dErrors.NewValidation("step data failed validation", res.FieldErrors))
	default:
		writeJSON(w, http.StatusOK, stepResponse{Next: string(res.Step), FormID: res.FormID})
	}
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	draftID := h.draftID(w, r)

	if err := h.wizard.Reset(ctx, draftID); err != nil {
		h.logger.ErrorContext(ctx, "draft reset failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "failed to reset draft"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSuccess is the completion signal: it confirms the draft actually
// reached the submitted state, redirecting to the first step otherwise.
func (h *Handler) handleSuccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	draftID := h.draftID(w, r)

	res, err := h.wizard.Enter(ctx, draftID, wizard.StepSubmitted)
	if err != nil {
		h.logger.ErrorContext(ctx, "success entry failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeInternal, "failed to load draft"))
		return
	}
	if res.Redirect != "" {
		writeJSON(w, http.StatusOK, stepResponse{Redirect: string(res.Redirect)})
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{Step: string(wizard.StepSubmitted)})
}
