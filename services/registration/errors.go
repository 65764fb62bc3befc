package registration

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound means the session ID does not exist or has expired.
	ErrSessionNotFound = errors.New("registration session not found")
	// ErrUnknownField means SetField was asked for a field the draft does not have.
	ErrUnknownField = errors.New("unknown draft field")
	// ErrUnknownDay means a schedule operation named a day outside monday..sunday.
	ErrUnknownDay = errors.New("unknown schedule day")
	// ErrLastTimeBlock means a removal would leave an active day with no blocks.
	ErrLastTimeBlock = errors.New("cannot remove the last time block of an active day")
	// ErrBlockIndexOutOfRange means a block operation addressed a missing index.
	ErrBlockIndexOutOfRange = errors.New("time block index out of range")
	// ErrInvalidStep means a navigation target outside 0..4.
	ErrInvalidStep = errors.New("step index out of range")
)

// StepValidationError reports the first step that failed the submit gate.
type StepValidationError struct {
	Step   int
	Result StepResult
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %d is invalid: %s", e.Step, e.Result.Message())
}
