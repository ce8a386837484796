package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runHandler(t *testing.T, method string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	HTTPErrorHandler(slog.Default())(err, e.NewContext(req, rec))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return resp["error"].(map[string]any)
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec := runHandler(t, http.MethodGet, NewBadRequest("invalid input").WithDetails(map[string]any{"field": "q"}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	errObj := decodeError(t, rec)
	if errObj["code"] != "bad_request" {
		t.Errorf("Code = %v, want bad_request", errObj["code"])
	}
	if errObj["message"] != "invalid input" {
		t.Errorf("Message = %v, want 'invalid input'", errObj["message"])
	}
	if errObj["details"].(map[string]any)["field"] != "q" {
		t.Errorf("Details = %v", errObj["details"])
	}
}

func TestHTTPErrorHandler_EchoError_StatusCodes(t *testing.T) {
	tests := []struct {
		status   int
		wantCode string
	}{
		{http.StatusBadRequest, "bad_request"},
		{http.StatusNotFound, "not_found"},
		{http.StatusMethodNotAllowed, "method_not_allowed"},
		{http.StatusUnprocessableEntity, "validation_error"},
		{http.StatusTooManyRequests, "rate_limited"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			rec := runHandler(t, http.MethodGet, echo.NewHTTPError(tt.status, "test message"))
			if rec.Code != tt.status {
				t.Errorf("Status = %d, want %d", rec.Code, tt.status)
			}
			errObj := decodeError(t, rec)
			if errObj["code"] != tt.wantCode {
				t.Errorf("Code = %v, want %v", errObj["code"], tt.wantCode)
			}
			if errObj["message"] != "test message" {
				t.Errorf("Message = %v", errObj["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_StructuredMessage(t *testing.T) {
	rec := runHandler(t, http.MethodGet, ErrToolNotFound.ToEchoError())

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
	if errObj := decodeError(t, rec); errObj["code"] != "tool_not_found" {
		t.Errorf("Code = %v, want tool_not_found", errObj["code"])
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec := runHandler(t, http.MethodGet, errors.New("database exploded"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", rec.Code)
	}
	errObj := decodeError(t, rec)
	if errObj["message"] != "An internal error occurred" {
		t.Errorf("internal details leaked: %v", errObj["message"])
	}
}

func TestHTTPErrorHandler_HeadRequest(t *testing.T) {
	rec := runHandler(t, http.MethodHead, ErrNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD response should have no body, got %q", rec.Body.String())
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.String(http.StatusOK, "done")

	HTTPErrorHandler(slog.Default())(ErrInternal, c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Errorf("committed response was overwritten: %d %q", rec.Code, rec.Body.String())
	}
}
