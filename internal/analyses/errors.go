package analyses

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrTextTooShort = errors.New("extracted text too short")
)

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeExtraction = "EXTRACTION_ERROR"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)
