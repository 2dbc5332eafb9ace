package aggregate

import (
	"errors"
	"fmt"
)

// ErrStructNotFound is the sentinel wrapped by StructNotFoundError.
var ErrStructNotFound = errors.New("struct not found")

// StructNotFoundError reports a group whose faculty code matches no struct.
type StructNotFoundError struct {
	Code  string
	Group string
}

func (e *StructNotFoundError) Error() string {
	return fmt.Sprintf("struct %q declared by group %q not found", e.Code, e.Group)
}

func (e *StructNotFoundError) Unwrap() error { return ErrStructNotFound }
