package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/s33d1ing/verskit/pkg/errors"
	"github.com/s33d1ing/verskit/pkg/serializer"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status code.
// Unknown codes map to 500.
func HTTPStatusFromCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest, apperrors.ErrCodeInvalidVersion:
		return http.StatusBadRequest
	case apperrors.ErrCodeBatchTooLarge:
		return http.StatusRequestEntityTooLarge
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client should retry the request for
// the given error code.
func retryableFromCode(code apperrors.ErrorCode) bool {
	switch code {
	case apperrors.ErrCodeTimeout,
		apperrors.ErrCodeUnavailable,
		apperrors.ErrCodeRateLimitExceeded,
		apperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps; keys in b overwrite keys in a.
// Returns nil when both inputs are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes a structured error response with the given status and
// code. The request ID is taken from the request context when present.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code apperrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr derives the status, code, message, and retryability
// from a structured error. Non-structured errors fall back to an internal
// error with the given message. The underlying cause is carried in the
// response details under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var structured *apperrors.StructuredError
	if errors.As(err, &structured) {
		merged := mergeDetails(structured.Context, details)
		if structured.Cause != nil {
			if merged == nil {
				merged = make(map[string]any, 1)
			}
			merged["error"] = structured.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(structured.Code), structured.Code,
			structured.Message, retryableFromCode(structured.Code), merged)
		return
	}

	merged := mergeDetails(details, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternal,
		fallbackMessage, true, merged)
}
