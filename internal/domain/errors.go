package domain

import "net/http"

// Error — доменная ошибка с HTTP-кодом. Транспорт отдает ее клиенту как
// {"success": false, "message": ...} с этим кодом.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NewValidation(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

func NewUnauthorized(message string) *Error {
	return NewError(http.StatusUnauthorized, message)
}

func NewForbidden(message string) *Error {
	return NewError(http.StatusForbidden, message)
}

func NewNotFound(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

func NewConflict(message string) *Error {
	return NewError(http.StatusConflict, message)
}

// Ошибки внешних сервисов (хранилище медиа, платежный шлюз)
func NewMediaStore(message string) *Error {
	return NewError(http.StatusBadGateway, message)
}

func NewGateway(message string) *Error {
	return NewError(http.StatusBadGateway, message)
}
