// Package common holds the sentinel errors and constants shared by the
// service, repository, and web layers. Callers match errors with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Request validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// Login / password verification. Deliberately does not reveal whether
	// the email or the password was wrong.
	ErrWrongCredentials = errors.New("wrong email or password")

	// Anything the store or the signer failed at that is not otherwise
	// classified.
	ErrInternal = errors.New("internal error")
)
