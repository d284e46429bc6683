package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/yldraft/olympic-draft/internal/domain/draft"
	"github.com/yldraft/olympic-draft/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestWriteError_HidesUnmappedDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("create pick: %w", fmt.Errorf(`pq: duplicate key value violates unique constraint "uq_unexpected"`))
	writeError(context.Background(), rec, wrapped)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if raw := rec.Body.String(); strings.Contains(raw, "pq:") || strings.Contains(raw, "create pick") {
		t.Fatalf("driver detail leaked into response body: %s", raw)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["message"].(string); got != "internal server error" {
		t.Fatalf("expected generic internal message, got %q", got)
	}
	if got, _ := errorObj["status"].(string); got != "INTERNAL" {
		t.Fatalf("expected error status INTERNAL, got %v", errorObj["status"])
	}
}

func TestMapError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantHTTP   int
		wantStatus string
	}{
		{name: "invalid input", err: usecase.ErrInvalidInput, wantHTTP: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "invalid entry", err: draft.ErrInvalidEntry, wantHTTP: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "not found", err: usecase.ErrNotFound, wantHTTP: http.StatusNotFound, wantStatus: "NOT_FOUND"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, wantHTTP: http.StatusUnauthorized, wantStatus: "UNAUTHENTICATED"},
		{name: "forbidden", err: usecase.ErrForbidden, wantHTTP: http.StatusForbidden, wantStatus: "PERMISSION_DENIED"},
		{name: "not a member", err: draft.ErrNotAMember, wantHTTP: http.StatusForbidden, wantStatus: "PERMISSION_DENIED"},
		{name: "dependency down", err: usecase.ErrDependencyUnavailable, wantHTTP: http.StatusServiceUnavailable, wantStatus: "UNAVAILABLE"},
		{name: "already picked", err: draft.ErrAlreadyPicked, wantHTTP: http.StatusConflict, wantStatus: "ALREADY_EXISTS"},
		{name: "entry taken", err: draft.ErrEntryTaken, wantHTTP: http.StatusConflict, wantStatus: "ALREADY_EXISTS"},
		{name: "draft not active", err: draft.ErrDraftNotActive, wantHTTP: http.StatusConflict, wantStatus: "FAILED_PRECONDITION"},
		{name: "draft complete", err: draft.ErrDraftComplete, wantHTTP: http.StatusConflict, wantStatus: "FAILED_PRECONDITION"},
		{name: "not your turn", err: draft.ErrNotYourTurn, wantHTTP: http.StatusConflict, wantStatus: "FAILED_PRECONDITION"},
		{name: "wrapped sentinel", err: fmt.Errorf("%w: user bob", draft.ErrNotYourTurn), wantHTTP: http.StatusConflict, wantStatus: "FAILED_PRECONDITION"},
		{name: "unknown error", err: fmt.Errorf("boom"), wantHTTP: http.StatusInternalServerError, wantStatus: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(context.Background(), tt.err)
			if mapped.HTTPStatus != tt.wantHTTP {
				t.Fatalf("expected http status %d, got %d", tt.wantHTTP, mapped.HTTPStatus)
			}
			if mapped.Status != tt.wantStatus {
				t.Fatalf("expected status %q, got %q", tt.wantStatus, mapped.Status)
			}
		})
	}
}
