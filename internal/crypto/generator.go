package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	DefaultLength = 16
	MaxLength     = 1024
)

var (
	ErrInvalidLength      = errors.New("password length must not be negative")
	ErrLengthTooLong      = errors.New("password length must be at most 1024")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
)

// Options configures the password generator.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool

	// RequireEachCategory guarantees at least one character from every
	// enabled category. Off by default, so output may miss a category.
	RequireEachCategory bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// categories returns the alphabets of the enabled categories in fixed order.
func (o Options) categories() []string {
	var sets []string
	if o.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if o.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if o.Numbers {
		sets = append(sets, numberChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// TypesEnabled reports how many character categories are enabled.
func (o Options) TypesEnabled() int {
	return len(o.categories())
}

// Charset returns the concatenation of every enabled category alphabet.
func (o Options) Charset() string {
	var charset string
	for _, set := range o.categories() {
		charset += set
	}
	return charset
}

// Generator draws passwords and keys from a secure random source.
type Generator struct {
	random io.Reader
}

// NewGenerator returns a Generator reading from r. A nil r means crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{random: r}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a random password from crypto/rand based on the given options.
func Generate(opts Options) (string, error) {
	return defaultGenerator.Password(opts)
}

// Password creates a random password based on the given options. An empty
// charset yields an empty password regardless of the requested length.
func (g *Generator) Password(opts Options) (string, error) {
	sets := opts.categories()
	if len(sets) == 0 {
		return "", nil
	}
	if opts.Length < 0 {
		return "", ErrInvalidLength
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}
	if opts.Length == 0 {
		return "", nil
	}

	charset := opts.Charset()

	if !opts.RequireEachCategory {
		values, err := g.uint32s(opts.Length)
		if err != nil {
			return "", err
		}
		result := make([]byte, opts.Length)
		for i, r := range values {
			result[i] = pick(charset, r)
		}
		return string(result), nil
	}

	if opts.Length < len(sets) {
		return "", ErrLengthInsufficient
	}

	// One draw per position plus one per shuffle swap.
	values, err := g.uint32s(2*opts.Length - 1)
	if err != nil {
		return "", err
	}

	result := make([]byte, opts.Length)
	for i := range result {
		if i < len(sets) {
			result[i] = pick(sets[i], values[i])
		} else {
			result[i] = pick(charset, values[i])
		}
	}

	shuffle(result, values[opts.Length:])

	return string(result), nil
}

// uint32s reads n little-endian uint32 values from the source in one batch.
func (g *Generator) uint32s(n int) ([]uint32, error) {
	buf := make([]byte, 4*n)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return nil, fmt.Errorf("reading random source: %w", err)
	}

	values := make([]uint32, n)
	for i := range values {
		values[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return values, nil
}

// pick maps r onto charset by modulo. Slightly biased when len(charset)
// does not divide 2^32.
func pick(charset string, r uint32) byte {
	return charset[r%uint32(len(charset))]
}

// shuffle performs a Fisher-Yates shuffle using len(data)-1 pre-drawn values.
func shuffle(data []byte, values []uint32) {
	for i := len(data) - 1; i > 0; i-- {
		j := values[len(data)-1-i] % uint32(i+1)
		data[i], data[j] = data[j], data[i]
	}
}
