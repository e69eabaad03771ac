package runner

import "errors"

// ErrFormat indicates that an input line is not an integer selection.
var ErrFormat = errors.New("input is not an integer")

// ErrInputClosed indicates that input ended before every question was answered.
var ErrInputClosed = errors.New("input closed before all questions were answered")

// ErrAlreadyStarted indicates that Start was called on a runner that already ran.
var ErrAlreadyStarted = errors.New("runner already started")
