package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrMalformedOrder is returned by a protocol adapter when a raw payload
	// misses required sub-fields; the caller skips the record and continues
	ErrMalformedOrder = errors.New("malformed order payload")
	// ErrExternalAPI is returned when an external marketplace call failed
	// after retries were exhausted
	ErrExternalAPI = errors.New("external api failure")
	// ErrValidationFailed is returned when cross-order validation rejects a bid
	ErrValidationFailed = errors.New("order validation failed")
	// ErrForbidden is returned on policy violations during order placement
	ErrForbidden = errors.New("forbidden")
	// ErrStaleLiveness marks a bid whose backing wallet balance dropped
	// below the bid price
	ErrStaleLiveness = errors.New("bid backing balance below bid price")

	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidProtocol     = errors.New("invalid protocol")
	ErrInvalidAddress      = errors.New("Invalid address")
)
