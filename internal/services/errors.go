package services

import "errors"

// Error taxonomy shared by every service. Handlers map these onto HTTP
// status codes (400/404/403/409); all of them are recoverable at the
// request boundary.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)
