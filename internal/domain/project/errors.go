package project

import "errors"

// Project domain errors
var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrOutsideProjectWindow = errors.New("date is outside the project's active window")
)
