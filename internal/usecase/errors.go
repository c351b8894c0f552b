package usecase

import "errors"

var (
	ErrInternal           = errors.New("internal error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmptySkills        = errors.New("no skills supplied")
	ErrOccupationNotFound = errors.New("occupation not found")
	ErrMOSNotFound        = errors.New("no crosswalk entries for MOS code")
	ErrUnauthorized       = errors.New("unauthorized")
)
