package domain

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound is returned by repositories when a lookup matches no row.
var ErrRecordNotFound = errors.New("Record not found")

const IDMandatory = "ID is mandatory"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindInvalidArgument
	KindInternal
)

// Error is a classified business-rule failure, independent of any
// transport representation. The message is part of the API contract.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func AccountDetailsNotAvailable(accountNumber string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Bank details are not available for the given account number %s", accountNumber),
	}
}

func AccountDetailsNotAvailableByID(accountNumber string, id int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Bank details are not available for the given account number %s / ID : %d", accountNumber, id),
	}
}

func AccountNumberExists(accountNumber string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("Account Number %s already Exists", accountNumber),
	}
}

func MandatoryValueMissing(message string) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: message,
	}
}
