package simplecrypt

import (
	"errors"
)

var (
	ErrNoKeySet        = errors.New("no key set")
	ErrUnknownVersion  = errors.New("unknown version")
	ErrIntegrityFailed = errors.New("integrity check failed")
	ErrMalformed       = errors.New("malformed input")
	ErrRandomSource    = errors.New("unable to read from random source")
	ErrInvalidMode     = errors.New("invalid mode")
)

// ErrorKind reports the outcome of the most recent operation on a Codec.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorNoKeySet
	ErrorUnknownVersion
	ErrorIntegrityFailed
	ErrorMalformed
	ErrorRandomSource
	ErrorUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "none"
	case ErrorNoKeySet:
		return "no key set"
	case ErrorUnknownVersion:
		return "unknown version"
	case ErrorIntegrityFailed:
		return "integrity failed"
	case ErrorMalformed:
		return "malformed"
	case ErrorRandomSource:
		return "random source"
	default:
		return "unknown"
	}
}

// KindOf maps an error returned from this package to its ErrorKind.
// A nil error is ErrorNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, ErrNoKeySet):
		return ErrorNoKeySet
	case errors.Is(err, ErrUnknownVersion):
		return ErrorUnknownVersion
	case errors.Is(err, ErrIntegrityFailed):
		return ErrorIntegrityFailed
	case errors.Is(err, ErrMalformed):
		return ErrorMalformed
	case errors.Is(err, ErrRandomSource):
		return ErrorRandomSource
	default:
		return ErrorUnknown
	}
}
