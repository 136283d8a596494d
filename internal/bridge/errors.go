package bridge

import "fmt"

// ConnectionError means the compositor could not be reached at startup
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("Cannot connect to Wayland display: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// MissingCapabilityError means a required global was not advertised
type MissingCapabilityError struct {
	Capability string
}

func (e *MissingCapabilityError) Error() string {
	switch e.Capability {
	case SeatInterface:
		return "No wl_seat found"
	default:
		return fmt.Sprintf("%s not supported", e.Capability)
	}
}

// DispatchError means the connection failed after it was established
type DispatchError struct {
	Op  string // discover, bind, subscribe or dispatch
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("Wayland %s failed: %v", e.Op, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
