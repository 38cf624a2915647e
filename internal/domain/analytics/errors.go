package analytics

import "errors"

var (
	ErrInvalidFeedbackInput = errors.New("rating and comments are required")
)
