package dem

import "errors"

var (
	// ErrUnknownTile is returned when a requested NED tile name is not in the index.
	ErrUnknownTile = errors.New("dem: unknown tile")
	// ErrIo is returned when tile I/O fails.
	ErrIo = errors.New("dem: io failure")
	// ErrCorruptTile is returned when a cached tile fails its magic-byte or CRC32 check.
	ErrCorruptTile = errors.New("dem: corrupt tile cache file")
	// ErrInterpolationUnavailable is returned by Interpolate when too few
	// unmasked cells are available, or the fitted value is not finite.
	// Non-fatal: callers should leave the edge's incline absent.
	ErrInterpolationUnavailable = errors.New("dem: interpolation unavailable")
)
