package registry

import "errors"

var (
	ErrUnknownList    = errors.New("unknown visit list")
	ErrUnknownVisit   = errors.New("unknown visit")
	ErrUnknownTask    = errors.New("unknown task")
	ErrUnknownPatient = errors.New("unknown patient")
)
