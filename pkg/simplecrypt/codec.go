package simplecrypt

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/saylorsolutions/simplecrypt/pkg/xor"
)

// Codec encrypts and decrypts simplecrypt blobs with a 64-bit key.
type Codec struct {
	mux         sync.RWMutex
	key         uint64
	schedule    []byte
	compression CompressionMode
	protection  ProtectionMode

	random  *randomSource
	lastErr atomic.Int32
}

// Option configures a Codec in New.
// If any Option returns an error, then construction stops and the error is returned.
type Option = func(*Codec) error

// WithCompression sets the CompressionMode used when encrypting.
func WithCompression(mode CompressionMode) Option {
	return func(c *Codec) error {
		if err := mode.validate(); err != nil {
			return err
		}
		c.compression = mode
		return nil
	}
}

// WithProtection sets the ProtectionMode used when encrypting.
func WithProtection(mode ProtectionMode) Option {
	return func(c *Codec) error {
		if err := mode.validate(); err != nil {
			return err
		}
		c.protection = mode
		return nil
	}
}

// WithRandom replaces the source of the padding byte added to each blob.
// The default is crypto/rand.Reader. The reader doesn't need to be safe for concurrent use.
func WithRandom(r io.Reader) Option {
	return func(c *Codec) error {
		if r == nil {
			return errors.New("random source cannot be nil")
		}
		c.random = &randomSource{src: r}
		return nil
	}
}

// WithSeed uses a pseudo-random generator seeded with seed for padding bytes.
// Codecs with the same seed, key, and settings produce identical output for identical input.
func WithSeed(seed uint64) Option {
	return WithRandom(newSeededReader(seed))
}

// New creates a Codec using key, configured with zero or more Option.
// A key of 0 means no key is set, and every operation will fail with ErrNoKeySet until SetKey is called.
// By default, the Codec uses CompressionAuto and ProtectionChecksum.
func New(key uint64, opts ...Option) (*Codec, error) {
	c := &Codec{
		key:         key,
		schedule:    xor.KeySchedule(key),
		compression: CompressionAuto,
		protection:  ProtectionChecksum,
		random:      &randomSource{src: rand.Reader},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetKey replaces the key and recomputes the key schedule.
func (c *Codec) SetKey(key uint64) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.key = key
	c.schedule = xor.KeySchedule(key)
}

// Key returns the current key, or 0 if no key is set.
func (c *Codec) Key() uint64 {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.key
}

// SetCompressionMode changes the CompressionMode used by later encrypt calls.
func (c *Codec) SetCompressionMode(mode CompressionMode) error {
	if err := mode.validate(); err != nil {
		return err
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	c.compression = mode
	return nil
}

// CompressionMode returns the CompressionMode used when encrypting.
func (c *Codec) CompressionMode() CompressionMode {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.compression
}

// SetProtectionMode changes the ProtectionMode used by later encrypt calls.
func (c *Codec) SetProtectionMode(mode ProtectionMode) error {
	if err := mode.validate(); err != nil {
		return err
	}
	c.mux.Lock()
	defer c.mux.Unlock()
	c.protection = mode
	return nil
}

// ProtectionMode returns the ProtectionMode used when encrypting.
func (c *Codec) ProtectionMode() ProtectionMode {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.protection
}

// LastError returns the ErrorKind of the most recent encrypt or decrypt call.
func (c *Codec) LastError() ErrorKind {
	return ErrorKind(c.lastErr.Load())
}

func (c *Codec) setLastError(err error) {
	c.lastErr.Store(int32(KindOf(err)))
}

type settings struct {
	schedule    []byte
	compression CompressionMode
	protection  ProtectionMode
}

// snapshot copies the current settings so a call isn't affected by concurrent changes.
// SetKey replaces the schedule slice rather than mutating it, so it's safe to share.
func (c *Codec) snapshot() settings {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return settings{
		schedule:    c.schedule,
		compression: c.compression,
		protection:  c.protection,
	}
}

// EncryptToBytes encodes plaintext into a blob.
// On failure, the returned slice is nil.
func (c *Codec) EncryptToBytes(plaintext []byte) ([]byte, error) {
	blob, err := c.encrypt(plaintext)
	c.setLastError(err)
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (c *Codec) encrypt(plaintext []byte) ([]byte, error) {
	s := c.snapshot()
	if len(s.schedule) == 0 {
		return nil, ErrNoKeySet
	}

	payload, flags, err := compress(plaintext, s.compression)
	if err != nil {
		return nil, err
	}
	trailer, protFlags, err := protect(payload, s.protection)
	if err != nil {
		return nil, err
	}
	flags |= protFlags

	pad, err := c.random.next()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(headerLen + 1 + len(trailer) + len(payload))
	h := header{version: Version, flags: flags}
	if err := h.write(&buf); err != nil {
		return nil, err
	}
	buf.WriteByte(pad)
	buf.Write(trailer)
	buf.Write(payload)

	blob := buf.Bytes()
	if err := xor.ChainEncrypt(blob[headerLen:], s.schedule); err != nil {
		return nil, err
	}
	return blob, nil
}

// DecryptToBytes decodes a blob produced by EncryptToBytes, or by any other implementation of the format.
// On failure, the returned slice is nil. The blob itself is never modified.
func (c *Codec) DecryptToBytes(blob []byte) ([]byte, error) {
	plaintext, err := c.decrypt(blob)
	c.setLastError(err)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

func (c *Codec) decrypt(blob []byte) ([]byte, error) {
	s := c.snapshot()
	if len(s.schedule) == 0 {
		return nil, ErrNoKeySet
	}
	h, err := readHeader(blob)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(blob)-headerLen)
	copy(data, blob[headerLen:])
	if err := xor.ChainDecrypt(data, s.schedule); err != nil {
		return nil, err
	}
	// Drop the padding byte.
	data = data[1:]

	payload, err := verify(data, h.flags)
	if err != nil {
		return nil, err
	}
	if h.flags.Has(FlagCompression) {
		return inflate(payload)
	}
	return payload, nil
}

// EncryptToString encodes plaintext and returns the blob as standard, padded Base64.
func (c *Codec) EncryptToString(plaintext []byte) (string, error) {
	blob, err := c.EncryptToBytes(plaintext)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// EncryptText encodes the UTF-8 bytes of text and returns the blob as Base64.
func (c *Codec) EncryptText(text string) (string, error) {
	return c.EncryptToString([]byte(text))
}

// DecryptToString decodes blob and returns the plaintext as a string.
// Plaintext that isn't valid UTF-8 is reported as ErrMalformed.
func (c *Codec) DecryptToString(blob []byte) (string, error) {
	plaintext, err := c.DecryptToBytes(blob)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		err = fmt.Errorf("%w: plaintext is not valid UTF-8", ErrMalformed)
		c.setLastError(err)
		return "", err
	}
	return string(plaintext), nil
}

// DecryptText decodes a Base64 blob, like the output of EncryptText, and returns the plaintext as a string.
func (c *Codec) DecryptText(encoded string) (string, error) {
	if len(c.snapshot().schedule) == 0 {
		c.setLastError(ErrNoKeySet)
		return "", ErrNoKeySet
	}
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		err = fmt.Errorf("%w: invalid base64: %v", ErrMalformed, err)
		c.setLastError(err)
		return "", err
	}
	return c.DecryptToString(blob)
}
