package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether a session can carry on after an error with
// this code. Argument and state errors are surfaced to the player and the
// game continues; internal errors mean a collaborator is broken.
func (c Code) Recoverable() bool {
	switch c {
	case CodeOK, CodeInvalidArgument, CodeNotFound, CodeAlreadyExists, CodeFailedPrecondition:
		return true
	default:
		return false
	}
}
