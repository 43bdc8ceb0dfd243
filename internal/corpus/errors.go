package corpus

import "errors"

// ErrTooLarge is returned when a corpus file exceeds the configured size limit.
var ErrTooLarge = errors.New("corpus file too large")
