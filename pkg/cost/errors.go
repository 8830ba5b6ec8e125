package cost

import "errors"

// ErrUnknownTimeZone is returned when a Request names a time zone that
// time.LoadLocation cannot resolve.
var ErrUnknownTimeZone = errors.New("cost: unknown time zone")
