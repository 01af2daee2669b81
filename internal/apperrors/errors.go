package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates an operation attempted an illegal state transition,
// or lost a conditional update race against a concurrent operator.
var ErrInvalidState = errors.New("invalid state transition")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an authenticated principal lacking permission.
var ErrForbidden = errors.New("forbidden")

// ErrPayloadTooLarge indicates an uploaded document exceeded the size limit.
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrUnsupportedMedia indicates an uploaded document has a disallowed media type.
var ErrUnsupportedMedia = errors.New("unsupported media type")
