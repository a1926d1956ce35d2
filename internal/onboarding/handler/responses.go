package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "onboard-gateway/pkg/domainerrors"
)

// errorResponse is the JSON error envelope. Internal errors omit the
// description so server details never leak to clients.
type errorResponse struct {
	Error            string               `json:"error"`
	ErrorDescription string               `json:"error_description,omitempty"`
	Fields           []dErrors.FieldError `json:"fields,omitempty"`
}

// stepResponse is the envelope for step entry and advance outcomes. Exactly
// one of Redirect, Step or Next is set.
type stepResponse struct {
	Step     string         `json:"step,omitempty"`
	Next     string         `json:"next,omitempty"`
	Redirect string         `json:"redirect,omitempty"`
	Values   map[string]any `json:"values,omitempty"`
	FormID   string         `json:"formId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError centralizes domain error translation to HTTP responses so every
// handler returns the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	description := ""
	var fields []dErrors.FieldError

	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		fields = de.Fields
		if code != dErrors.CodeInternal {
			description = de.Message
		}
	}

	writeJSON(w, dErrors.ToHTTPStatus(code), errorResponse{
		Error:            string(code),
		ErrorDescription: description,
		Fields:           fields,
	})
}
