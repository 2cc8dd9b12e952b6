package service

import "errors"

// Sentinel errors for everything the transport layer needs to tell apart.
// Handlers translate these with errors.Is; anything else is a 500.
var (
	ErrNotFound           = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment does not exist")
	ErrForbidden          = errors.New("user not authorized")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post has not yet been liked")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
