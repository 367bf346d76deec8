package persist

import "errors"

// ErrCodecError wraps any failure from the reference codec's read or write
// path, matching the core's CodecError error kind.
var ErrCodecError = errors.New("persist: codec error")
