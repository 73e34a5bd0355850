package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	_, ok := err.(*DuplicateKeyError)
	return ok
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// StaleNonceError signals a vault or agent call whose nonce is not strictly
// ahead of the last accepted one. The caller must inspect current state and
// retry with the correct nonce; the rejected call changed nothing.
type StaleNonceError struct {
	Key     string
	Message string
}

func (e *StaleNonceError) Error() string {
	return e.Message
}

func IsStaleNonceError(err error) bool {
	_, ok := err.(*StaleNonceError)
	return ok
}

// PausedError signals a deposit attempted while the vault is paused after an
// emergency withdraw.
type PausedError struct {
	Key     string
	Message string
}

func (e *PausedError) Error() string {
	return e.Message
}

func IsPausedError(err error) bool {
	_, ok := err.(*PausedError)
	return ok
}

// Error code references: https://www.mongodb.com/docs/manual/reference/error-codes/
func IsWriteConflictError(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr *mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr != nil && cmdErr.Code == 112
	}

	return false
}

func IsTransactionAbortedError(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr *mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr != nil && cmdErr.Code == 251
	}

	return false
}
