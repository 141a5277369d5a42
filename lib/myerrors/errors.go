package myerrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInternal       Kind = "internal"
	KindInvalidInput   Kind = "invalid-input"
	KindNotFound       Kind = "not-found"
	KindConflict       Kind = "conflict"
	KindNotImplemented Kind = "not-implemented"
)

type kindCoder interface {
	error
	GetErrorKind() Kind
}

type kindError struct {
	kind Kind
	err  error
}

func (e kindError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.err.Error())
}

func (e kindError) Unwrap() error {
	return e.err
}

func (e kindError) GetErrorKind() Kind {
	return e.kind
}

func newError(kind Kind, err error) *kindError {
	return &kindError{
		kind: kind,
		err:  err,
	}
}

func NewInvalidInputError(err error) error {
	return newError(KindInvalidInput, err)
}

func NewInvalidInputErrorf(format string, args ...any) error {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) error {
	return newError(KindNotFound, err)
}

func NewNotFoundErrorf(format string, args ...any) error {
	return NewNotFoundError(fmt.Errorf(format, args...))
}

func NewConflictError(err error) error {
	return newError(KindConflict, err)
}

func NewInternalError(err error) error {
	return newError(KindInternal, err)
}

func NewInternalErrorf(format string, args ...any) error {
	return NewInternalError(fmt.Errorf(format, args...))
}

func NewNotImplementedError(err error) error {
	return newError(KindNotImplemented, err)
}

// GetKind returns the outermost classification found in the chain, KindInternal otherwise.
func GetKind(err error) Kind {
	var coder kindCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetErrorKind()
	}
	return KindInternal
}

func IsInvalidInput(err error) bool {
	return err != nil && GetKind(err) == KindInvalidInput
}

func IsNotFound(err error) bool {
	return err != nil && GetKind(err) == KindNotFound
}
