package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
	ErrOnlyPCM16Supported    = errors.New("only PCM 16-bit supported")
)
