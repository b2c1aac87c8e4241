package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing entity maps to 404", fmt.Errorf("booking not found"), http.StatusNotFound, "booking not found"},
		{"ownership breach maps to 403", fmt.Errorf("not allowed to view these reviews"), http.StatusForbidden, "not allowed to view these reviews"},
		{"validation maps to 400", fmt.Errorf("validation failed: Email: Invalid email format"), http.StatusBadRequest, "validation failed: Email: Invalid email format"},
		{"duplicate singleton maps to 400", fmt.Errorf("vip tour already exists"), http.StatusBadRequest, "vip tour already exists"},
		{"upload cap maps to 400", fmt.Errorf("too many files: maximum is 10"), http.StatusBadRequest, "too many files: maximum is 10"},
		{"bad mimetype maps to 400", fmt.Errorf("unsupported file type: application/pdf"), http.StatusBadRequest, "unsupported file type: application/pdf"},
		{"rate failure maps to 500 with its message", fmt.Errorf("failed to fetch exchange rate"), http.StatusInternalServerError, "failed to fetch exchange rate"},
		{"gateway failure maps to 500 with its message", fmt.Errorf("payment gateway error"), http.StatusInternalServerError, "payment gateway error"},
		{"unknown errors map to an opaque 500", fmt.Errorf("dial tcp 10.0.0.5:27017: i/o timeout"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tc.err, "test operation")

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var body struct {
				Status  bool   `json:"status"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json body: %v", err)
			}
			if body.Status {
				t.Error("status flag must be false on errors")
			}
			if body.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tc.wantMsg)
			}
		})
	}
}
