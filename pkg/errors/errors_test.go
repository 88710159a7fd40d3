package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("connection refused")
	wrapped := Wrap(originalErr, CodeUpstream, "upstream call failed", http.StatusBadGateway)

	if !errors.Is(wrapped, originalErr) {
		t.Errorf("expected wrapped error to unwrap to the original error")
	}
	if wrapped.Code != CodeUpstream {
		t.Errorf("expected code %s, got %s", CodeUpstream, wrapped.Code)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without cause",
			appErr:   New(CodeNotFound, "venue not found", http.StatusNotFound),
			expected: "NOT_FOUND: venue not found",
		},
		{
			name:     "with cause",
			appErr:   Wrap(errors.New("eof"), CodeInternal, "decode failed", http.StatusInternalServerError),
			expected: "INTERNAL_ERROR: decode failed (caused by: eof)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestJoinFailureCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"slots full", SlotsFull(), CodeSlotsFull, http.StatusConflict},
		{"already joined", AlreadyJoined(), CodeAlreadyJoined, http.StatusConflict},
		{"booking closed", BookingClosed(), CodeBookingClosed, http.StatusConflict},
		{"invalid invite", InvalidInvite("XYZ"), CodeInvalidInvite, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if tt.err.HTTPStatus != tt.httpStatus {
				t.Errorf("expected status %d, got %d", tt.httpStatus, tt.err.HTTPStatus)
			}
			if tt.err.Message == "" {
				t.Error("join failures must carry a user-visible message")
			}
		})
	}

	// Each join failure must stay distinguishable from the others.
	if SlotsFull().Code == BookingClosed().Code {
		t.Error("join failure codes must be distinct")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Booking")
	if got := AsAppError(appErr); got != appErr {
		t.Error("expected AsAppError to return the same AppError")
	}

	raw := errors.New("boom")
	converted := AsAppError(raw)
	if converted.Code != CodeInternal {
		t.Errorf("expected raw error to convert to %s, got %s", CodeInternal, converted.Code)
	}
	if !errors.Is(converted, raw) {
		t.Error("expected converted error to keep the cause")
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(SlotsFull(), CodeSlotsFull) {
		t.Error("expected HasCode to match")
	}
	if HasCode(errors.New("plain"), CodeSlotsFull) {
		t.Error("expected plain errors not to match any code")
	}
}
