package passkey

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultLongIterations        uint64 = 1 << 20
	DefaultInteractiveIterations uint64 = 1 << 15
	DefaultRelBlockSize          uint8  = 8
	DefaultCpuCost               uint8  = 1
	DefaultSaltSize              uint8  = 16
	MinSaltSize                  uint8  = 8
	keySize                             = 8
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
	ErrInvalidSalt     = errors.New("invalid salt")
	ErrZeroKey         = errors.New("derived key is zero")
)

// Salt is a slice of secure random bytes that is used with scrypt to derive a key from a Passphrase.
type Salt []byte

// Passphrase is a human-readable string used to derive a key.
type Passphrase []byte

type KeyGenerator struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
	saltSize          uint8
}

func (g *KeyGenerator) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&g.iterations),
		bin.Byte(&g.relativeBlockSize),
		bin.Byte(&g.cpuCost),
		bin.Byte(&g.saltSize),
	)
}

type GeneratorOpt = func(*KeyGenerator) error

// SetLongDelayIterations sets a higher iteration count. This is sufficient for infrequent key derivation, or cases where the key will be cached for long periods of time.
func SetLongDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultLongIterations
		return nil
	}
}

// SetShortDelayIterations sets a lower iteration count, which is the default.
// This is appropriate for command line use where a key is derived on every invocation.
func SetShortDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultInteractiveIterations
		return nil
	}
}

// SetIterations allows the caller to customize the iteration count, which must be a power of 2 greater than 1.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if err := validateIterations(iterations); err != nil {
			return err
		}
		gen.iterations = iterations
		return nil
	}
}

func validateIterations(iterations uint64) error {
	if iterations <= 1 {
		return errors.New("iterations cannot be <= 1")
	}
	if iterations&(iterations-1) != 0 {
		return errors.New("iterations must be a power of 2")
	}
	return nil
}

// SetCPUCost sets the parallelism factor for key derivation from the default of 1.
// Only use this option if you know what you're doing.
func SetCPUCost(cost uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if cost < DefaultCpuCost {
			return errors.New("cpu cost must be at least 1")
		}
		gen.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the relative block size.
// Only use this option if you know what you're doing.
func SetRelativeBlockSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if size < DefaultRelBlockSize {
			return errors.New("relative block size must be at least 8")
		}
		gen.relativeBlockSize = size
		return nil
	}
}

// SetSaltSize sets the length of salts created by GenerateKey.
func SetSaltSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if size < MinSaltSize {
			return fmt.Errorf("salt size must be at least %d", MinSaltSize)
		}
		gen.saltSize = size
		return nil
	}
}

// NewKeyGenerator creates a new KeyGenerator using the options provided as zero or more GeneratorOpt.
// By default, the generator uses DefaultInteractiveIterations and DefaultSaltSize.
func NewKeyGenerator(opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations:        DefaultInteractiveIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
		saltSize:          DefaultSaltSize,
	}

	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

// GenerateKey will generate a random salt and derive a key from it and the passphrase.
func (g *KeyGenerator) GenerateKey(pass Passphrase) (key uint64, salt Salt, err error) {
	if len(pass) == 0 {
		return 0, nil, ErrEmptyPassPhrase
	}
	salt = make(Salt, g.saltSize)
	if _, err = io.ReadFull(rand.Reader, salt); err != nil {
		return 0, nil, err
	}
	key, err = g.DeriveKey(pass, salt)
	if err != nil {
		return 0, nil, err
	}
	return key, salt, nil
}

// DeriveKey will recover a key with the given passphrase and salt.
// This doesn't ensure that the given passphrase is the *correct* passphrase used to encode a payload.
func (g *KeyGenerator) DeriveKey(pass Passphrase, salt Salt) (uint64, error) {
	if len(pass) == 0 {
		return 0, ErrEmptyPassPhrase
	}
	if len(salt) < int(MinSaltSize) {
		return 0, fmt.Errorf("%w: salt must be at least %d bytes, got %d", ErrInvalidSalt, MinSaltSize, len(salt))
	}
	derived, err := scrypt.Key(pass, salt, int(g.iterations), int(g.relativeBlockSize), int(g.cpuCost), keySize)
	if err != nil {
		return 0, err
	}
	key := binary.BigEndian.Uint64(derived)
	if key == 0 {
		return 0, ErrZeroKey
	}
	return key, nil
}

// MarshalBinary encodes the generator settings.
func (g *KeyGenerator) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces the generator settings with those encoded by MarshalBinary.
func (g *KeyGenerator) UnmarshalBinary(data []byte) error {
	var read KeyGenerator
	if err := read.mapper().Read(bytes.NewReader(data), binary.BigEndian); err != nil {
		return err
	}
	if err := validateIterations(read.iterations); err != nil {
		return err
	}
	if read.relativeBlockSize < DefaultRelBlockSize || read.cpuCost < DefaultCpuCost || read.saltSize < MinSaltSize {
		return errors.New("invalid key generator settings")
	}
	*g = read
	return nil
}
