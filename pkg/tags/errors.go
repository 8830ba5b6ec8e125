package tags

import "errors"

// tags: sentinel errors for this package. Classification failure is not an
// error — it is a normal, non-error outcome (see NormalizeWay's and
// NormalizeNode's ok return).
var (
	// ErrNilTags names a nil tag set. NormalizeWay and NormalizeNode do not
	// return it: they treat a nil set as empty and report ok=false.
	ErrNilTags = errors.New("tags: nil tag set")
)
