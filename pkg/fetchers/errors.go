package fetchers

import "errors"

// ErrNotFound is returned when a fetch gets a non-2xx HTTP status.
var ErrNotFound = errors.New("fetchers: remote resource not found")
