package domain

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidPeriod        = errors.New("invalid return period")
	ErrReturnNotFound       = errors.New("return not found for period")
	ErrDraftNotFound        = errors.New("no saved draft for period")
	ErrReturnSubmitted      = errors.New("return already submitted and frozen")
	ErrUnknownSection       = errors.New("unknown return section")
	ErrUnknownSlot          = errors.New("unknown slot for return section")
	ErrValidationFailed     = errors.New("return has outstanding validation errors")
	ErrConfirmationMismatch = errors.New("confirmed liability does not match computed liability")
	ErrFilingFailed         = errors.New("filing submission failed")
)
