package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// Коды ошибок в поле error.code envelope
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
)

// WriteSuccess пишет envelope с success:true
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data any) error {
	return writeEnvelope(w, statusCode, pkgapi.Envelope[any]{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// WriteError пишет envelope с success:false и деталями ошибки
func WriteError(w http.ResponseWriter, statusCode int, code, message string) error {
	return writeEnvelope(w, statusCode, pkgapi.Envelope[any]{
		Success:   false,
		Message:   message,
		Error:     &pkgapi.ErrorDetail{Code: code, Message: message},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, env pkgapi.Envelope[any]) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(env)
}

// responder общая часть handlers: отправка envelope с логированием ошибок записи
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет успешный ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, message string, statusCode int) {
	if err := WriteSuccess(w, statusCode, message, data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, code, message string, statusCode int) {
	if err := WriteError(w, statusCode, code, message); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendInternalError логирует причину и отправляет клиенту общее сообщение
func (h responder) sendInternalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	h.sendError(w, CodeInternal, "internal server error", http.StatusInternalServerError)
}

// maxBodySize ограничение размера тела запроса
const maxBodySize = 1 << 20

// decodeJSON читает тело запроса в dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst)
}
