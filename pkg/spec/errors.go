package spec

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter matches every *InvalidParameterError via errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports an input outside its domain. It is raised
// before any computation and carries enough detail to display or log.
type InvalidParameterError struct {
	Field    string `json:"field"`
	Value    any    `json:"value"`
	Expected string `json:"expected"`
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: got %v, expected %s", e.Field, e.Value, e.Expected)
}

// Is lets errors.Is(err, ErrInvalidParameter) match.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}
