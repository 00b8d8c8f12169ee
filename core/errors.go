package core

import (
	"errors"
	"fmt"
)

// Error codes for tree construction and configuration.
// Layout passes themselves never return errors.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // node or attribute does not exist
	EINVALID  int = 123 // operation not valid for node or tree state
	ECHILDREN int = 124 // child count exceeds the container's limit
	EINTERNAL int = 125 // internal error
)

var codeText = map[int]string{
	NOERROR:   "OK",
	EMISSING:  "not found",
	EINVALID:  "invalid",
	ECHILDREN: "too many children",
	EINTERNAL: "internal error",
}

// LayoutError is an error of a tree or attribute operation, carrying one of
// the error codes above. Cause is optional.
type LayoutError struct {
	Code  int
	Msg   string
	Cause error
}

func (e *LayoutError) Error() string {
	text, ok := codeText[e.Code]
	if !ok {
		text = "undefined error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s [%d]: %s: %v", text, e.Code, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s [%d]: %s", text, e.Code, e.Msg)
}

func (e *LayoutError) Unwrap() error {
	return e.Cause
}

// Error creates a layout error with code and a message.
func Error(code int, format string, v ...interface{}) error {
	return &LayoutError{Code: code, Msg: fmt.Sprintf(format, v...)}
}

// WrapError is Error with an underlying cause. The code of the wrapper
// takes precedence over any code found in cause.
func WrapError(cause error, code int, format string, v ...interface{}) error {
	return &LayoutError{Code: code, Msg: fmt.Sprintf(format, v...), Cause: cause}
}

// Code returns the code of the outermost layout error in err's chain,
// NOERROR for a nil error and EINTERNAL for foreign errors.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var le *LayoutError
	if errors.As(err, &le) {
		return le.Code
	}
	return EINTERNAL
}
