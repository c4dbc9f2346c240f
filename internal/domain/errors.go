package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrAccessDenied is returned when the requesting user does not own the trip
// they are operating on. Handlers should map this to HTTP 403.
var ErrAccessDenied = errors.New("access denied")

// ErrEmptyResponse is returned by the generator when the model provider
// returned no usable content. Terminal for that generation attempt; the only
// retry path is a user-initiated regenerate.
var ErrEmptyResponse = errors.New("empty model response")

// ErrMalformedResponse is returned by the itinerary parser when the model
// output does not contain a structurally valid day array. Terminal, like
// ErrEmptyResponse. The raw output is logged for diagnosis but never shown
// to the end user.
var ErrMalformedResponse = errors.New("malformed model response")
