package simplecrypt

import (
	"fmt"
	"strings"
)

// CompressionMode determines whether the payload is compressed before it's screened.
type CompressionMode int

const (
	// CompressionAuto compresses only when the result is smaller than the input. This is the default.
	CompressionAuto CompressionMode = iota
	// CompressionAlways compresses regardless of the result size.
	CompressionAlways
	// CompressionNever leaves the payload as-is.
	CompressionNever
)

func (m CompressionMode) String() string {
	switch m {
	case CompressionAuto:
		return "auto"
	case CompressionAlways:
		return "always"
	case CompressionNever:
		return "never"
	default:
		return fmt.Sprintf("CompressionMode(%d)", int(m))
	}
}

func (m CompressionMode) validate() error {
	switch m {
	case CompressionAuto, CompressionAlways, CompressionNever:
		return nil
	default:
		return fmt.Errorf("%w: unrecognized compression mode %d", ErrInvalidMode, int(m))
	}
}

// ParseCompressionMode accepts the names returned by CompressionMode.String, ignoring case.
func ParseCompressionMode(s string) (CompressionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return CompressionAuto, nil
	case "always":
		return CompressionAlways, nil
	case "never":
		return CompressionNever, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized compression mode '%s'", ErrInvalidMode, s)
	}
}

// ProtectionMode determines which integrity trailer, if any, is stored with the payload.
type ProtectionMode int

const (
	// ProtectionNone stores no trailer, so corruption goes undetected.
	ProtectionNone ProtectionMode = iota
	// ProtectionChecksum stores a CRC-16/X.25 checksum. This is the default.
	ProtectionChecksum
	// ProtectionHash stores a SHA-1 hash.
	ProtectionHash
)

func (m ProtectionMode) String() string {
	switch m {
	case ProtectionNone:
		return "none"
	case ProtectionChecksum:
		return "checksum"
	case ProtectionHash:
		return "hash"
	default:
		return fmt.Sprintf("ProtectionMode(%d)", int(m))
	}
}

func (m ProtectionMode) validate() error {
	switch m {
	case ProtectionNone, ProtectionChecksum, ProtectionHash:
		return nil
	default:
		return fmt.Errorf("%w: unrecognized protection mode %d", ErrInvalidMode, int(m))
	}
}

// ParseProtectionMode accepts the names returned by ProtectionMode.String, ignoring case.
func ParseProtectionMode(s string) (ProtectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ProtectionNone, nil
	case "checksum":
		return ProtectionChecksum, nil
	case "hash":
		return ProtectionHash, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized protection mode '%s'", ErrInvalidMode, s)
	}
}

// Flags is the bitmask stored in the second byte of an encoded blob.
type Flags byte

const (
	FlagNone        Flags = 0
	FlagCompression Flags = 0x01
	FlagChecksum    Flags = 0x02
	FlagHash        Flags = 0x04
)

// Has reports whether all bits in f are set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}
