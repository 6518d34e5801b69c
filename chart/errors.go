package chart

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates a chart type tag outside the six known kinds.
var ErrUnknownKind = errors.New("unknown chart kind")

// ErrMissingPayload indicates the data field the kind requires was not given.
var ErrMissingPayload = errors.New("missing chart payload")

// ErrPayloadMismatch indicates a data field that does not belong to the kind.
var ErrPayloadMismatch = errors.New("payload does not match chart kind")

// ErrUnknownUnit indicates a unit other than "", "%" or "$".
var ErrUnknownUnit = errors.New("unknown unit")

// ErrInvalidWidth indicates a measured container width of zero or less.
var ErrInvalidWidth = errors.New("chart width must be positive")

// ErrInvalidHeight indicates a requested height of zero or less.
var ErrInvalidHeight = errors.New("chart height must be positive")

// ErrInvalidStyle indicates a plotParams color or dash that is not a plain
// CSS color or dash list.
var ErrInvalidStyle = errors.New("invalid plot style")

// MountError is a caller-contract fault raised while mounting a chart.
type MountError struct {
	ContainerID string
	Kind        Kind
	Err         error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount %s chart into %q: %v", e.Kind, e.ContainerID, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}
