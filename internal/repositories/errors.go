package repositories

import "errors"

var (
	// ErrInvalidID signals an identifier that is not a valid hex ObjectID.
	ErrInvalidID = errors.New("invalid id format")

	// ErrDuplicateRequest signals that a volunteer already has a request
	// for the same post.
	ErrDuplicateRequest = errors.New("request already exists for this post")
)
