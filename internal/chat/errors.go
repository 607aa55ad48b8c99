package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrRateLimited  = errors.New("too many messages, slow down")
)
