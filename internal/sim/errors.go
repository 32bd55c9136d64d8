package sim

import (
	"errors"
	"fmt"
)

// ErrTerminal marks failures of the terminal backend. They end the run.
var ErrTerminal = errors.New("sim: terminal failure")

// FrameError wraps a terminal error with the frame and operation it hit.
type FrameError struct {
	Frame   int
	Op      string
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %s: %v", e.Frame, e.Op, e.Wrapped)
}

func (e *FrameError) Unwrap() []error {
	return []error{ErrTerminal, e.Wrapped}
}
