package curbramp

import "errors"

// ErrEmptyIndex names an Index with no accessible kerb points. Index
// queries do not return it: NearAny reports false for an empty Index.
var ErrEmptyIndex = errors.New("curbramp: kerb index is empty")
