// Package respond centraliza la escritura de respuestas JSON.
// writeJSON se repetía en cada módulo de handlers; acá queda una sola versión.
package respond

import (
	"encoding/json"
	"net/http"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/platform/logger"
)

// ErrorBody es el cuerpo de toda respuesta de error.
type ErrorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor mapea el Kind de dominio a status HTTP.
func StatusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindValidation, errs.KindInvalidDateRange:
		return http.StatusBadRequest
	case errs.KindNoVisitFound:
		return http.StatusConflict
	case errs.KindTransactionFailed, errs.KindStoreTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error escribe err con su status. Los errores internos no exponen detalle al cliente.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := errs.KindOf(err)
	status := StatusFor(kind)

	body := ErrorBody{
		Error:   string(kind),
		Message: err.Error(),
		Fields:  errs.Fields(err),
	}
	if status == http.StatusInternalServerError {
		body.Message = "internal error"
		logger.FromContext(r.Context(), logger.Nop()).Error("request failed", logger.Fields{
			"error": err,
		})
	}
	if errs.Retryable(err) {
		w.Header().Set("Retry-After", "1")
	}
	JSON(w, status, body)
}

// BadRequest es para errores de decodificación (antes de llegar al dominio).
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Error: string(errs.KindValidation), Message: msg})
}

func Unauthorized(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, ErrorBody{Error: "Unauthorized", Message: "unauthorized"})
}
