package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")

	// ErrNotFound: no record with that id exists at all.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: the record exists but belongs to someone else.
	ErrForbidden = errors.New("forbidden")

	ErrSelfPartner = errors.New("cannot set yourself as partner")

	// ErrReceiverNotFound: a coupon was sent to a user id that does not exist.
	ErrReceiverNotFound = errors.New("receiver not found")
)
