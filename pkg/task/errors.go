package task

import "errors"

// ErrUnsupportedAttribute is returned when a layer is annotated under an
// attribute name other than the two C9 defines.
var ErrUnsupportedAttribute = errors.New("task: unsupported annotation attribute")
