package ftx

import (
	"errors"
	"fmt"
)

const errorTitle = "FtxAPI"

type ErrorType string

const (
	RequestErrorT      ErrorType = "RequestError"
	HTTPStatusErrorT   ErrorType = "HTTPStatusError"
	EnvelopeErrorT     ErrorType = "EnvelopeError"
	RecordDecodeErrorT ErrorType = "RecordDecodeError"
	ArgumentErrorT     ErrorType = "ArgumentError"
	InternalErrorT     ErrorType = "InternalError"
)

type Error struct {
	Type       ErrorType
	Err        error
	Endpoint   string
	StatusCode int
}

func NewError(t ErrorType, e error) *Error {
	return &Error{Type: t, Err: e}
}

func (e *Error) SetEndpoint(endpoint string) *Error {
	newError := *e
	newError.Endpoint = endpoint

	return &newError
}

func (e *Error) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("%s: %s: %s: %s", errorTitle, e.Endpoint, e.Type, e.Err)
	}

	return fmt.Sprintf("%s: %s: %s", errorTitle, e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsErrorType сообщает, содержит ли цепочка err ошибку *Error типа t
func IsErrorType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// StatusError - ответ биржи с кодом вне диапазона 2xx.
// Тело ответа не анализируется.
type StatusError struct {
	Code   int
	Status string
}

func newStatusError(code int, status string) *Error {
	err := NewError(HTTPStatusErrorT, &StatusError{Code: code, Status: status})
	err.StatusCode = code
	return err
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("server responded with status %s", e.Status)
	}
	return fmt.Sprintf("server responded with a %d status code", e.Code)
}

// RecordError описывает элемент result, который не удалось декодировать
type RecordError struct {
	Index int
	Name  string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("record %d (%s): %s", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("record %d: %s", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
