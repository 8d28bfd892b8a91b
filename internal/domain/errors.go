package domain

import "errors"

var (
	// ErrNotFound covers unknown or inactive records.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOrExpired is the single redemption failure signal. Wrong code,
	// reused code and expired code are deliberately indistinguishable so the
	// response leaks nothing about ledger state.
	ErrInvalidOrExpired = errors.New("invalid or expired code")

	// ErrDelivery means the notification channel failed after the code was
	// already persisted. The code stays valid.
	ErrDelivery = errors.New("failed to send email")

	// ErrConflict covers uniqueness violations on admin writes.
	ErrConflict = errors.New("already exists")

	// ErrInvalidInput marks request validation failures.
	ErrInvalidInput = errors.New("invalid input")
)
