package extractor

import (
	"errors"
	"fmt"
)

var (
	errMissingColor = errors.New("missing color")
	errNilNode      = errors.New("nil node")
)

// MalformedNodeError is returned when a node does not have the shape an extractor
// needs to read it. It aborts the whole export.
type MalformedNodeError struct {
	NodeID    string
	Attribute string // e.g. "fills[0].color"
	Err       error
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed node %s: %s: %v", e.NodeID, e.Attribute, e.Err)
}

func (e *MalformedNodeError) Unwrap() error {
	return e.Err
}
