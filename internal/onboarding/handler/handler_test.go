package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboard-gateway/internal/onboarding/draft"
	"onboard-gateway/internal/onboarding/forms"
	"onboard-gateway/internal/onboarding/submit"
	"onboard-gateway/internal/onboarding/wizard"
	"onboard-gateway/pkg/testutil"
)

type testServer struct {
	router http.Handler
	forms  *forms.InMemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	drafts := draft.NewInMemoryStore()
	store := forms.NewInMemoryStore()
	coordinator := submit.NewCoordinator(store, logger, nil)
	machine := wizard.NewMachine(drafts, coordinator, logger, nil)

	h := New(machine, logger, nil)
	r := chi.NewRouter()
	h.Register(r)
	return &testServer{router: r, forms: store}
}

func personalData() map[string]any {
	return map[string]any{
		"firstName": "Amina", "surname": "Hassan", "title": "ms",
		"email": "amina.hassan@example.org", "phone": "07700900123",
		"birthDate": "1990-04-12", "gender": "female", "nino": "AB123456C",
		"birthPlace": "somalia", "addressLine1": "12 Waterside House",
		"postTown": "Manchester", "postcode": "M1 2AB",
		"country": "United Kingdom", "maritalStatus": "married",
	}
}

func additionalData() map[string]any {
	return map[string]any{
		"nationality": "somali", "enteredUK": "2018-06-01",
		"immigrationStatus": "refugee", "tenancyType": "social-housing",
		"currentSituation": "Living in temporary council accommodation",
	}
}

func withDraft(req *http.Request, draftID string) *http.Request {
	req.Header.Set("X-Draft-ID", draftID)
	return req
}

func TestEnterPersonalMintsDraftID(t *testing.T) {
	srv := newTestServer(t)

	rr := testutil.DoRequest(srv.router, testutil.NewRequest(t, http.MethodGet, "/onboarding/steps/personal"))
	require.Equal(t, http.StatusOK, rr.Code)

	assert.NotEmpty(t, rr.Header().Get("X-Draft-ID"))
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "onboarding_draft", cookies[0].Name)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "personal", resp["step"])
	values := resp["values"].(map[string]any)
	assert.Equal(t, "united-kingdom", values["birthPlace"])
}

func TestEnterUnknownStepIsNotFound(t *testing.T) {
	srv := newTestServer(t)
	rr := testutil.DoRequest(srv.router, testutil.NewRequest(t, http.MethodGet, "/onboarding/steps/payment"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEnterLaterStepRedirects(t *testing.T) {
	srv := newTestServer(t)
	rr := testutil.DoRequest(srv.router,
		withDraft(testutil.NewRequest(t, http.MethodGet, "/onboarding/steps/consent"), "d1"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "personal", resp["redirect"])
}

func TestAdvanceRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t)
	req := testutil.NewRequest(t, http.MethodPost, "/onboarding/steps/personal")
	rr := testutil.DoRequest(srv.router, withDraft(req, "d1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "bad_request", resp["error"])
}

func TestAdvanceReturnsEveryFieldError(t *testing.T) {
	srv := newTestServer(t)

	data := personalData()
	data["firstName"] = "A"
	data["nino"] = "ZZ123456C"

	req := testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/personal", data)
	rr := testutil.DoRequest(srv.router, withDraft(req, "d1"))
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "validation_failed", resp.Error)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "firstName", resp.Fields[0].Field)
	assert.Equal(t, "nino", resp.Fields[1].Field)
}

func TestFullFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	const draftID = "d-flow"

	// Success page is gated until the flow completes.
	rr := testutil.DoRequest(srv.router,
		withDraft(testutil.NewRequest(t, http.MethodGet, "/onboarding/success"), draftID))
	var gate map[string]any
	testutil.DecodeJSON(t, rr, &gate)
	assert.Equal(t, "personal", gate["redirect"])

	req := testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/personal", personalData())
	rr = testutil.DoRequest(srv.router, withDraft(req, draftID))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "additional", resp["next"])

	req = testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/additional", additionalData())
	rr = testutil.DoRequest(srv.router, withDraft(req, draftID))
	require.Equal(t, http.StatusOK, rr.Code)
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "consent", resp["next"])

	// Revisiting an earlier step keeps the saved values.
	rr = testutil.DoRequest(srv.router,
		withDraft(testutil.NewRequest(t, http.MethodGet, "/onboarding/steps/personal"), draftID))
	testutil.DecodeJSON(t, rr, &resp)
	values := resp["values"].(map[string]any)
	assert.Equal(t, "Amina", values["firstName"])

	req = testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/consent",
		map[string]any{"termsAndConditions": true})
	rr = testutil.DoRequest(srv.router, withDraft(req, draftID))
	require.Equal(t, http.StatusOK, rr.Code)
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "submitted", resp["next"])
	assert.NotEmpty(t, resp["formId"])

	require.Len(t, srv.forms.Forms(), 1)

	rr = testutil.DoRequest(srv.router,
		withDraft(testutil.NewRequest(t, http.MethodGet, "/onboarding/success"), draftID))
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "submitted", resp["step"])
}

func TestConsentStoreFailureIsRetryable(t *testing.T) {
	srv := newTestServer(t)
	const draftID = "d-retry"

	req := testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/personal", personalData())
	testutil.DoRequest(srv.router, withDraft(req, draftID))
	req = testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/additional", additionalData())
	testutil.DoRequest(srv.router, withDraft(req, draftID))

	srv.forms.FailWith = errors.New("document store down")
	req = testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/consent",
		map[string]any{"termsAndConditions": true})
	rr := testutil.DoRequest(srv.router, withDraft(req, draftID))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "store_unavailable", resp["error"])

	// Consent survived the failure: re-entry shows the box still ticked.
	rr = testutil.DoRequest(srv.router,
		withDraft(testutil.NewRequest(t, http.MethodGet, "/onboarding/steps/consent"), draftID))
	testutil.DecodeJSON(t, rr, &resp)
	values := resp["values"].(map[string]any)
	assert.Equal(t, true, values["termsAndConditions"])

	srv.forms.FailWith = nil
	req = testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/consent",
		map[string]any{"termsAndConditions": true})
	rr = testutil.DoRequest(srv.router, withDraft(req, draftID))
	require.Equal(t, http.StatusOK, rr.Code)
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "submitted", resp["next"])
}

func TestResetClearsProgress(t *testing.T) {
	srv := newTestServer(t)
	const draftID = "d-reset"

	req := testutil.NewJSONRequest(t, http.MethodPost, "/onboarding/steps/personal", personalData())
	testutil.DoRequest(srv.router, withDraft(req, draftID))

	rr := testutil.DoRequest(srv.router,
		withDraft(testutil.NewRequest(t, http.MethodPost, "/onboarding/reset"), draftID))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = testutil.DoRequest(srv.router,
		withDraft(testutil.NewRequest(t, http.MethodGet, "/onboarding/steps/additional"), draftID))
	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "personal", resp["redirect"])
}

func TestCatalogListsAllOptionSets(t *testing.T) {
	srv := newTestServer(t)
	rr := testutil.DoRequest(srv.router, testutil.NewRequest(t, http.MethodGet, "/onboarding/catalog"))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string][]map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	for _, key := range []string{"titles", "genders", "maritalStatuses", "countries",
		"nationalities", "immigrationStatuses", "tenancyTypes"} {
		assert.NotEmpty(t, resp[key], "missing catalog %s", key)
	}
	assert.Equal(t, "mr", resp["titles"][0]["value"])
}
