package models

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	TitleBadRequest  = "BAD REQUEST"
	TitleNotFound    = "NOT FOUND"
	TitleSystemError = "SYSTEM ERROR"
)

// OperationResult is returned by every service operation. Callers branch on
// Successful only.
type OperationResult[T any] struct {
	StatusCode   int
	ErrorTitle   string
	ErrorMessage string
	Result       T
}

func (r OperationResult[T]) Successful() bool {
	return r.ErrorTitle == "" && r.ErrorMessage == ""
}

func (r OperationResult[T]) Status() int { return r.StatusCode }

func (r OperationResult[T]) Problem() (string, string) { return r.ErrorTitle, r.ErrorMessage }

func (r OperationResult[T]) Payload() interface{} { return r.Result }

// Envelope is the type-erased view of an OperationResult used by the transport.
type Envelope interface {
	Successful() bool
	Status() int
	Problem() (title string, detail string)
	Payload() interface{}
}

// OperationError is a classified failure raised inside a service operation.
type OperationError struct {
	StatusCode int
	Title      string
	Message    string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func BadRequest(message string) *OperationError {
	return &OperationError{StatusCode: http.StatusBadRequest, Title: TitleBadRequest, Message: message}
}

func NotFound(message string) *OperationError {
	return &OperationError{StatusCode: http.StatusNotFound, Title: TitleNotFound, Message: message}
}

func SystemError(message string) *OperationError {
	return &OperationError{StatusCode: http.StatusInternalServerError, Title: TitleSystemError, Message: message}
}

// Resolve builds the envelope for an operation outcome. A nil err succeeds with
// status; an *OperationError keeps its classification; anything else is a 500.
func Resolve[T any](status int, result T, err error) OperationResult[T] {
	if err == nil {
		return OperationResult[T]{StatusCode: status, Result: result}
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		opErr = SystemError(err.Error())
	}
	message := opErr.Message
	if message == "" {
		message = opErr.Title
	}
	return OperationResult[T]{
		StatusCode:   opErr.StatusCode,
		ErrorTitle:   opErr.Title,
		ErrorMessage: message,
	}
}
