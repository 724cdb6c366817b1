package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"cortesec-admin/internal/shared/apperror"
)

// GenericErrorMessage is shown when the backend body carries no usable message.
const GenericErrorMessage = "Error al comunicarse con el servidor"

const fieldErrorsMessage = "Revise los campos marcados"

var messageKeys = []string{"detail", "error", "message", "mensaje", "non_field_errors"}

// DecodeError maps a backend error answer onto an AppError. Bodies shaped
// as {field: [messages]} are returned as details.fields for form binding.
func DecodeError(status int, body []byte) *apperror.AppError {
	code, httpStatus := classify(status)
	appErr := apperror.New(code, GenericErrorMessage, httpStatus)
	appErr.Err = fmt.Errorf("backend status %d", status)

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		return appErr
	}

	for _, key := range messageKeys {
		if msg := firstString(payload[key]); msg != "" {
			appErr.Message = msg
			delete(payload, key)
			break
		}
	}

	fields := make(map[string][]string)
	for key, v := range payload {
		if msgs := stringList(v); len(msgs) > 0 {
			fields[key] = msgs
		}
	}
	if len(fields) > 0 {
		if appErr.Message == GenericErrorMessage {
			appErr.Message = fieldErrorsMessage
		}
		appErr.Details = map[string]any{"fields": fields}
	}

	return appErr
}

// FieldSummary flattens field errors into a stable single line.
func FieldSummary(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

func classify(status int) (string, int) {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperror.CodeValidation, http.StatusBadRequest
	case status == http.StatusUnauthorized:
		return apperror.CodeUnauthorized, http.StatusUnauthorized
	case status == http.StatusForbidden:
		return apperror.CodeForbidden, http.StatusForbidden
	case status == http.StatusNotFound:
		return apperror.CodeNotFound, http.StatusNotFound
	case status == http.StatusConflict:
		return apperror.CodeConflict, http.StatusConflict
	case status == http.StatusTooManyRequests:
		return apperror.CodeTooManyRequests, http.StatusTooManyRequests
	case status >= 500:
		return apperror.CodeBackendError, http.StatusBadGateway
	default:
		return apperror.CodeBackendError, status
	}
}

func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func stringList(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
