package services

import "errors"

// Failure taxonomy for the parsing and scoring pipeline. Callers match with
// errors.Is; the raw library error stays wrapped underneath for logs.
var (
	ErrFileNotFound      = errors.New("document file not found")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrCorruptDocument   = errors.New("document could not be read")
	ErrModelLoadFailure  = errors.New("embedding model initialization failed")
)
