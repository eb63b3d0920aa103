package http

import (
	"encoding/json"
	"net/http"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

type errorArg struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type apiError struct {
	Status   string     `json:"status"`
	Code     string     `json:"code"`
	Message  string     `json:"message,omitempty"`
	Args     []errorArg `json:"args,omitempty"`
	Category string     `json:"category,omitempty"`
	Severity string     `json:"severity,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, map[string]any{
		"status": "success",
		"data":   data,
	})
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{
		"status":  "success",
		"message": message,
	})
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, apiError{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// writeFailure renders a failure outcome. The HTTP status comes from the
// error's category; the body carries the stable code plus templating args.
// Developer mode additionally exposes the category and severity labels.
func (h *Handler) writeFailure(w http.ResponseWriter, err result.Error) {
	body := apiError{
		Status: "error",
		Code:   err.Code(),
	}
	for _, arg := range err.Args() {
		body.Args = append(body.Args, errorArg{Key: arg.Key, Value: arg.Value})
	}
	if h.developerMode {
		body.Category = err.Category().String()
		body.Severity = err.Severity().String()
	}
	writeJSON(w, err.Category().HTTPStatus(), body)
}
