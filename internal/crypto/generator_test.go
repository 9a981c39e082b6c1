package crypto

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSource = errors.New("mocked random source failure")

// errorReader is a random source that always fails.
type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, errSource
}

// uint32Source returns a reader that yields the given values as little-endian uint32s.
func uint32Source(values ...uint32) io.Reader {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return bytes.NewReader(buf)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name: "default options",
			opts: DefaultOptions(),
		},
		{
			name: "all options enabled",
			opts: Options{Length: 32, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
		},
		{
			name: "uppercase only",
			opts: Options{Length: 16, Uppercase: true},
		},
		{
			name: "single character",
			opts: Options{Length: 1, Numbers: true},
		},
		{
			name: "maximum length",
			opts: Options{Length: MaxLength, Uppercase: true, Lowercase: true},
		},
		{
			name:    "negative length",
			opts:    Options{Length: -1, Uppercase: true},
			wantErr: ErrInvalidLength,
		},
		{
			name:    "length too long",
			opts:    Options{Length: MaxLength + 1, Uppercase: true},
			wantErr: ErrLengthTooLong,
		},
		{
			name:    "strict with too few positions",
			opts:    Options{Length: 3, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true, RequireEachCategory: true},
			wantErr: ErrLengthInsufficient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, result, "Generate() should return empty string on error")
				return
			}

			require.NoError(t, err, "Generate() unexpected error")
			assert.Len(t, result, tt.opts.Length)
		})
	}
}

func TestGenerateEmptyCharset(t *testing.T) {
	for _, length := range []int{-5, 0, 1, 16, MaxLength, MaxLength * 10} {
		result, err := Generate(Options{Length: length})
		require.NoError(t, err, "length %d", length)
		assert.Empty(t, result, "length %d", length)
	}
}

func TestGenerateZeroLength(t *testing.T) {
	result, err := NewGenerator(errorReader{}).Password(Options{Length: 0, Uppercase: true})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGenerateCharacterMembership(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		charset string
	}{
		{
			name:    "uppercase only",
			opts:    Options{Length: 64, Uppercase: true},
			charset: uppercaseChars,
		},
		{
			name:    "lowercase only",
			opts:    Options{Length: 64, Lowercase: true},
			charset: lowercaseChars,
		},
		{
			name:    "numbers only",
			opts:    Options{Length: 64, Numbers: true},
			charset: numberChars,
		},
		{
			name:    "symbols only",
			opts:    Options{Length: 64, Symbols: true},
			charset: symbolChars,
		},
		{
			name:    "letters and numbers",
			opts:    Options{Length: 64, Uppercase: true, Lowercase: true, Numbers: true},
			charset: uppercaseChars + lowercaseChars + numberChars,
		},
		{
			name:    "strict all categories",
			opts:    Options{Length: 64, Uppercase: true, Numbers: true, Symbols: true, RequireEachCategory: true},
			charset: uppercaseChars + numberChars + symbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			require.NoError(t, err)
			require.Len(t, password, tt.opts.Length)
			for _, ch := range password {
				assert.Contains(t, tt.charset, string(ch), "password contains unexpected character")
			}
		})
	}
}

func TestCharsetOrder(t *testing.T) {
	opts := Options{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
	assert.Equal(t, uppercaseChars+lowercaseChars+numberChars+symbolChars, opts.Charset())
	assert.Len(t, opts.Charset(), 88)

	opts = Options{Numbers: true, Uppercase: true}
	assert.Equal(t, uppercaseChars+numberChars, opts.Charset())

	assert.Empty(t, Options{}.Charset())
}

func TestPasswordModuloMapping(t *testing.T) {
	g := NewGenerator(uint32Source(0, 25, 26, 61, 62, 87, 88, 1<<32-1))

	password, err := g.Password(Options{
		Length: 8, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
	})
	require.NoError(t, err)
	// 2^32-1 mod 88 is 47, the 22nd lowercase letter.
	assert.Equal(t, "AZa9!?Av", password)
}

func TestPasswordDeterministicForFixedSource(t *testing.T) {
	opts := Options{Length: 12, Lowercase: true, Numbers: true}
	values := []uint32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8}

	first, err := NewGenerator(uint32Source(values...)).Password(opts)
	require.NoError(t, err)
	second, err := NewGenerator(uint32Source(values...)).Password(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "dbebfjcgfdfi", first)
}

func TestPasswordStrictPlacesEachCategory(t *testing.T) {
	// All-zero draws: A, a, 0, ! then padding, shuffled by swaps with index 0.
	g := NewGenerator(bytes.NewReader(make([]byte, 4*(2*6-1))))

	password, err := g.Password(Options{
		Length: 6, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
		RequireEachCategory: true,
	})
	require.NoError(t, err)
	require.Len(t, password, 6)
	assert.True(t, strings.ContainsAny(password, uppercaseChars))
	assert.True(t, strings.ContainsAny(password, lowercaseChars))
	assert.True(t, strings.ContainsAny(password, numberChars))
	assert.True(t, strings.ContainsAny(password, symbolChars))
}

func TestPasswordStrictContainsRequiredTypes(t *testing.T) {
	opts := DefaultOptions()
	opts.Length = 4
	opts.RequireEachCategory = true

	for i := 0; i < 200; i++ {
		password, err := Generate(opts)
		require.NoError(t, err)

		assert.True(t, strings.ContainsAny(password, uppercaseChars), "password %q missing uppercase character", password)
		assert.True(t, strings.ContainsAny(password, lowercaseChars), "password %q missing lowercase character", password)
		assert.True(t, strings.ContainsAny(password, numberChars), "password %q missing number character", password)
		assert.True(t, strings.ContainsAny(password, symbolChars), "password %q missing symbol character", password)
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		password, err := Generate(opts)
		require.NoError(t, err)
		assert.False(t, seen[password], "duplicate password generated: %q", password)
		seen[password] = true
	}
}

func TestPasswordSourceFailure(t *testing.T) {
	t.Run("failing source", func(t *testing.T) {
		_, err := NewGenerator(errorReader{}).Password(DefaultOptions())
		assert.ErrorIs(t, err, errSource)
	})

	t.Run("strict failing source", func(t *testing.T) {
		opts := DefaultOptions()
		opts.RequireEachCategory = true
		_, err := NewGenerator(errorReader{}).Password(opts)
		assert.ErrorIs(t, err, errSource)
	})

	t.Run("exhausted source", func(t *testing.T) {
		_, err := NewGenerator(uint32Source(1, 2, 3)).Password(DefaultOptions())
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestTypesEnabled(t *testing.T) {
	assert.Equal(t, 0, Options{}.TypesEnabled())
	assert.Equal(t, 2, Options{Lowercase: true, Symbols: true}.TypesEnabled())
	assert.Equal(t, 4, DefaultOptions().TypesEnabled())
}

// BenchmarkGenerate measures password generation with the default options.
func BenchmarkGenerate(b *testing.B) {
	opts := DefaultOptions()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(opts); err != nil {
			b.Fatal(err)
		}
	}
}
