package simplecrypt

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // Required by the format, this is not used for security.
	"crypto/subtle"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

const (
	checksumLen = 2
	hashLen     = sha1.Size
)

// protect computes the trailer for payload according to mode, and the flags that describe it.
func protect(payload []byte, mode ProtectionMode) ([]byte, Flags, error) {
	switch mode {
	case ProtectionNone:
		return nil, FlagNone, nil
	case ProtectionChecksum:
		var (
			buf bytes.Buffer
			sum = Checksum(payload)
		)
		if err := bin.Int(&sum).Write(&buf, endian); err != nil {
			return nil, FlagNone, err
		}
		return buf.Bytes(), FlagChecksum, nil
	case ProtectionHash:
		hash := sha1.Sum(payload) //nolint:gosec
		return hash[:], FlagHash, nil
	default:
		return nil, FlagNone, mode.validate()
	}
}

// verify strips and checks the trailer indicated by flags, returning the payload that follows it.
// The checksum takes precedence if a blob claims to have both.
func verify(data []byte, flags Flags) ([]byte, error) {
	switch {
	case flags.Has(FlagChecksum):
		if len(data) < checksumLen {
			return nil, fmt.Errorf("%w: not enough data for a checksum", ErrIntegrityFailed)
		}
		var stored uint16
		if err := bin.Int(&stored).Read(bytes.NewReader(data[:checksumLen]), endian); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIntegrityFailed, err)
		}
		payload := data[checksumLen:]
		if computed := Checksum(payload); computed != stored {
			return nil, fmt.Errorf("%w: checksum %#04x does not match stored %#04x", ErrIntegrityFailed, computed, stored)
		}
		return payload, nil
	case flags.Has(FlagHash):
		if len(data) < hashLen {
			return nil, fmt.Errorf("%w: not enough data for a hash", ErrIntegrityFailed)
		}
		stored, payload := data[:hashLen], data[hashLen:]
		computed := sha1.Sum(payload) //nolint:gosec
		if subtle.ConstantTimeCompare(computed[:], stored) != 1 {
			return nil, fmt.Errorf("%w: hash mismatch", ErrIntegrityFailed)
		}
		return payload, nil
	default:
		return data, nil
	}
}
