package service

import "errors"

// Validation errors surfaced to the HTTP layer as 400s
var (
	ErrInvalidStage      = errors.New("invalid stage")
	ErrInvalidEntityType = errors.New("invalid entity type")
)
