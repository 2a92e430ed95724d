package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"servicescale/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing owner", usecase.ErrMissingOwner, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"parse", &usecase.ImportParseError{Line: 3, Err: errors.New("bare quote")}, http.StatusBadRequest, "IMPORT_PARSE_ERROR"},
		{"validation", usecase.ErrInvalidQuoteStatus, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"wrapped validation", fmt.Errorf("create: %w", usecase.ErrNegativePrice), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", &usecase.NotFoundError{Kind: "customer", ID: "c1"}, http.StatusNotFound, "NOT_FOUND"},
		{"enrichment off", usecase.ErrEnrichmentNotConfigured, http.StatusServiceUnavailable, "ENRICHMENT_NOT_CONFIGURED"},
		{"remote", &usecase.RemoteError{Op: "store.select", Err: errors.New("timeout")}, http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}

	t.Run("parse details reach the client", func(t *testing.T) {
		body := mapError(&usecase.ImportParseError{Line: 3, Err: errors.New("bare quote")}).ToHTTPError()
		if body.Details == "" {
			t.Fatalf("expected details on parse errors")
		}
	})

	t.Run("internal causes stay private", func(t *testing.T) {
		body := mapError(errors.New("dial tcp 10.0.0.1:5432")).ToHTTPError()
		if body.Details != "" {
			t.Fatalf("expected no details, got %q", body.Details)
		}
	})
}
