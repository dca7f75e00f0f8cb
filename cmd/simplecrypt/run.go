package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/saylorsolutions/simplecrypt/cmd/internal"
	"github.com/saylorsolutions/simplecrypt/pkg/passkey"
	"github.com/saylorsolutions/simplecrypt/pkg/simplecrypt"
	"github.com/saylorsolutions/simplecrypt/pkg/xor"
	flag "github.com/spf13/pflag"
)

var errUsage = errors.New("usage")

type options struct {
	help        bool
	raw         bool
	key         string
	passphrase  string
	salt        string
	compression string
	integrity   string
	file        string
	output      string
}

func newFlagSet(opts *options, out io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("simplecrypt", flag.ContinueOnError)
	flags.SetOutput(out)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&opts.raw, "raw", "r", false, "Treat blobs as raw bytes instead of Base64 text.")
	flags.StringVarP(&opts.key, "key", "k", "", "The 64-bit key as a decimal or 0x-prefixed hex number.")
	flags.StringVarP(&opts.passphrase, "passphrase", "p", "", "Derive the key from a passphrase instead. Requires --salt, except with keygen.")
	flags.StringVarP(&opts.salt, "salt", "s", "", "Hex encoded salt used with --passphrase.")
	flags.StringVarP(&opts.compression, "compression", "c", simplecrypt.CompressionAuto.String(), "Compression mode when encrypting: auto, always, or never.")
	flags.StringVarP(&opts.integrity, "integrity", "i", simplecrypt.ProtectionChecksum.String(), "Integrity protection when encrypting: none, checksum, or hash.")
	flags.StringVarP(&opts.file, "file", "f", "", "Read input from this file instead of the INPUT argument or stdin.")
	flags.StringVarP(&opts.output, "output", "o", "", "Write output to this file instead of stdout.")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), `
simplecrypt reads and writes the version 3 simple crypt format, which screens data with a chained XOR keyed by a 64-bit integer.
Version: %s

USAGE:  simplecrypt [FLAGS] COMMAND [INPUT]

COMMANDS:
    encrypt    Encode INPUT and print the blob as Base64 (or raw bytes with -r).
    decrypt    Decode a Base64 blob (or raw bytes with -r) and print the plaintext.
    keygen     Print a random key, or derive one from --passphrase with a new random salt.

ARGS:
    INPUT is the data to process. If it's not given and --file isn't set, then stdin is read.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
The format exists to keep data from casual inspection, and to interoperate with applications that already use it.
`, version, flags.FlagUsages())
	}
	return flags
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	flags := newFlagSet(&opts, stdout)
	if len(args) == 0 {
		flags.Usage()
		return nil
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if opts.help {
		flags.Usage()
		return nil
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("%w: missing required COMMAND argument", errUsage)
	}

	switch cmd := flags.Arg(0); cmd {
	case "keygen":
		return keygen(&opts, stdout)
	case "encrypt", "decrypt":
		codec, err := newCodec(&opts)
		if err != nil {
			return err
		}
		input, err := readInput(&opts, flags.Args()[1:], stdin)
		if err != nil {
			return err
		}
		var output []byte
		if cmd == "encrypt" {
			output, err = encrypt(codec, &opts, input)
		} else {
			output, err = decrypt(codec, &opts, input)
		}
		if err != nil {
			return err
		}
		return writeOutput(&opts, stdout, output)
	default:
		return fmt.Errorf("%w: unknown command '%s'", errUsage, cmd)
	}
}

// parseKey accepts decimal, or hex with a 0x prefix.
func parseKey(s string) (uint64, error) {
	key, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key '%s': %w", s, err)
	}
	if key == 0 {
		return 0, errors.New("key cannot be 0")
	}
	return key, nil
}

func resolveKey(opts *options) (uint64, error) {
	switch {
	case len(opts.key) > 0 && len(opts.passphrase) > 0:
		return 0, fmt.Errorf("%w: only one of --key or --passphrase may be used", errUsage)
	case len(opts.key) > 0:
		return parseKey(opts.key)
	case len(opts.passphrase) > 0:
		if len(opts.salt) == 0 {
			return 0, fmt.Errorf("%w: --salt is required with --passphrase", errUsage)
		}
		salt, err := hex.DecodeString(opts.salt)
		if err != nil {
			return 0, fmt.Errorf("failed to decode salt, must be a hex string: %w", err)
		}
		gen, err := passkey.NewKeyGenerator()
		if err != nil {
			return 0, err
		}
		return gen.DeriveKey(passkey.Passphrase(opts.passphrase), salt)
	default:
		return 0, fmt.Errorf("%w: one of --key or --passphrase is required", errUsage)
	}
}

func newCodec(opts *options) (*simplecrypt.Codec, error) {
	key, err := resolveKey(opts)
	if err != nil {
		return nil, err
	}
	compression, err := simplecrypt.ParseCompressionMode(opts.compression)
	if err != nil {
		return nil, err
	}
	protection, err := simplecrypt.ParseProtectionMode(opts.integrity)
	if err != nil {
		return nil, err
	}
	return simplecrypt.New(key,
		simplecrypt.WithCompression(compression),
		simplecrypt.WithProtection(protection),
	)
}

func keygen(opts *options, stdout io.Writer) error {
	if len(opts.passphrase) == 0 {
		key, err := xor.GenKey()
		if err != nil {
			return err
		}
		return internal.Fprint(stdout, "0x%016x", key)
	}
	gen, err := passkey.NewKeyGenerator()
	if err != nil {
		return err
	}
	key, salt, err := gen.GenerateKey(passkey.Passphrase(opts.passphrase))
	if err != nil {
		return err
	}
	return internal.Fprint(stdout, "key:  0x%016x\nsalt: %s", key, hex.EncodeToString(salt))
}

func readInput(opts *options, args []string, stdin io.Reader) ([]byte, error) {
	switch {
	case len(opts.file) > 0:
		data, err := os.ReadFile(opts.file) //nolint:gosec // This is intended to allow arbitrary file reads.
		if err != nil {
			return nil, fmt.Errorf("failed to read input file '%s': %w", opts.file, err)
		}
		return data, nil
	case len(args) > 0:
		return []byte(strings.Join(args, " ")), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
}

func encrypt(codec *simplecrypt.Codec, opts *options, input []byte) ([]byte, error) {
	blob, err := codec.EncryptToBytes(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}
	if opts.raw {
		return blob, nil
	}
	return []byte(base64.StdEncoding.EncodeToString(blob) + "\n"), nil
}

func decrypt(codec *simplecrypt.Codec, opts *options, input []byte) ([]byte, error) {
	blob := input
	if !opts.raw {
		var err error
		blob, err = base64.StdEncoding.DecodeString(strings.TrimSpace(string(input)))
		if err != nil {
			return nil, fmt.Errorf("failed to decode input as Base64: %w", err)
		}
	}
	plaintext, err := codec.DecryptToBytes(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt (%s): %w", codec.LastError(), err)
	}
	return plaintext, nil
}

func writeOutput(opts *options, stdout io.Writer, data []byte) error {
	if len(opts.output) > 0 {
		if err := os.WriteFile(opts.output, data, 0600); err != nil {
			return fmt.Errorf("failed to write output file '%s': %w", opts.output, err)
		}
		return nil
	}
	_, err := stdout.Write(data)
	return err
}
