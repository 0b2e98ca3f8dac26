package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so handlers can pick a status code without
// inspecting messages.
type ErrorKind string

const (
	KindValidation       ErrorKind = "ValidationError"
	KindNotFound         ErrorKind = "NotFound"
	KindInvalidRequest   ErrorKind = "InvalidRequest"
	KindUpstream         ErrorKind = "UpstreamError"
	KindSignatureInvalid ErrorKind = "SignatureInvalid"
	KindMalformedEvent   ErrorKind = "MalformedEvent"
	KindConflict         ErrorKind = "Conflict"
	KindInternal         ErrorKind = "Internal"
)

// AppError is the error type returned across service boundaries.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
	Err     error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(field, msg string) *AppError {
	return &AppError{Kind: KindValidation, Field: field, Message: msg}
}

func NewNotFound(entity, id string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

func NewInvalidRequest(field, msg string) *AppError {
	return &AppError{Kind: KindInvalidRequest, Field: field, Message: msg}
}

func NewUpstreamError(msg string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: msg, Err: err}
}

func NewSignatureInvalid(err error) *AppError {
	return &AppError{Kind: KindSignatureInvalid, Message: "webhook signature verification failed", Err: err}
}

func NewMalformedEvent(msg string, err error) *AppError {
	return &AppError{Kind: KindMalformedEvent, Message: msg, Err: err}
}

func NewConflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

// KindOf reports the kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
