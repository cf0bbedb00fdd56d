package database

import "errors"

// Storage-level failure taxonomy. Handlers translate these into
// HTTP status codes, anything else is an internal error.
var (
	ErrConflict         = errors.New("username or email already registered")
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotLiked         = errors.New("post not liked")
)
