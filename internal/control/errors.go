package control

import "errors"

// Domain errors for control construction and configuration.
var (
	// ErrUnknownControl indicates a control name with no registered widget.
	ErrUnknownControl = errors.New("control: unknown control name")

	// ErrParameterBounds indicates a tuning parameter outside its valid range.
	ErrParameterBounds = errors.New("control: parameter out of valid bounds")
)
