package question

import "errors"

// ErrNullInput indicates that a required value was absent.
var ErrNullInput = errors.New("value is absent")

// ErrInvalidArgument indicates that a supplied value was empty or malformed.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrOutOfRange indicates that an answer index falls outside the allowed bounds.
var ErrOutOfRange = errors.New("index out of range")

// ErrInvalidState indicates that a builder cannot assemble a consistent question.
var ErrInvalidState = errors.New("invalid builder state")
