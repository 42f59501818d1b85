package blake3

import "errors"

// ErrInvalidKeyLength is returned by NewKeyed when the supplied key is not
// exactly KeyLen bytes.
var ErrInvalidKeyLength = errors.New("blake3: key must be 32 bytes")

// ErrOutputBufferTooSmall is returned by FinalizeTo when the destination
// buffer is shorter than the requested output length.
var ErrOutputBufferTooSmall = errors.New("blake3: output buffer smaller than requested length")
