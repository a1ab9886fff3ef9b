package api

import (
	"fmt"
	"net/http"
)

// Envelope представляет стандартную обертку любого ответа API
type Envelope[T any] struct {
	Data      T            `json:"data"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Message   string       `json:"message"`
	Timestamp string       `json:"timestamp"`
	Success   bool         `json:"success"`
}

// ErrorDetail дополнительная информация об ошибке в envelope
type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error описывает неуспешный ответ сервера (success:false или не-2xx статус)
type Error struct {
	Message    string
	Code       string
	StatusCode int
}

func (e *Error) Error() string {
	if e.StatusCode != 0 && e.StatusCode != http.StatusOK {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// Unwrap переводит envelope в пару (data, error).
// Envelope с success:false превращается в *Error с сообщением сервера.
func (e Envelope[T]) Unwrap(statusCode int) (T, error) {
	if e.Success {
		return e.Data, nil
	}

	var zero T
	apiErr := &Error{
		Message:    e.Message,
		StatusCode: statusCode,
	}
	if e.Error != nil {
		apiErr.Code = e.Error.Code
		if apiErr.Message == "" {
			apiErr.Message = e.Error.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = "request failed"
	}
	return zero, apiErr
}
