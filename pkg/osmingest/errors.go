package osmingest

import "errors"

// osmingest: sentinel errors for the two fatal conditions C2 can raise.
// Both are fatal for the whole ingest — no partial graph is returned,
// per §4.2.
var (
	// ErrCorruptInput is returned when the PBF stream fails to decode.
	ErrCorruptInput = errors.New("osmingest: corrupt PBF input")
	// ErrIo is returned when the underlying reader/seeker fails.
	ErrIo = errors.New("osmingest: io failure")
)
