package whitebg

import "errors"

// Failure classes surfaced by the package. Callers can test for them with
// errors.Is; the wrapped message carries the path or format detail.
var (
	// ErrDecode reports an input that is missing, corrupt, or in a format
	// no registered codec understands.
	ErrDecode = errors.New("whitebg: decode input")

	// ErrEncode reports an output format that cannot represent the result,
	// e.g. JPEG, which has no alpha channel.
	ErrEncode = errors.New("whitebg: encode output")

	// ErrWrite reports an output path that cannot be written.
	ErrWrite = errors.New("whitebg: write output")

	// ErrThreshold reports a threshold outside [0, 255].
	ErrThreshold = errors.New("whitebg: threshold out of range")
)
