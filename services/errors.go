package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoSession is returned when no user is logged in.
	ErrNoSession = errors.New("no active session")
)
