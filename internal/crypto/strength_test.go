package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	all := Options{Length: 16, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
	three := Options{Uppercase: true, Lowercase: true, Numbers: true}
	upper := Options{Length: 8, Uppercase: true}

	tests := []struct {
		name     string
		password string
		opts     Options
		want     Strength
	}{
		{name: "empty with options", password: "", opts: all, want: Strength{0, "Empty"}},
		{name: "empty without options", password: "", opts: Options{}, want: Strength{0, "Empty"}},
		{name: "short", password: "abc", opts: upper, want: Strength{1, "Very Weak"}},
		{name: "seven chars all types", password: strings.Repeat("a", 7), opts: all, want: Strength{1, "Very Weak"}},
		{name: "eight chars one type", password: "ABCDEFGH", opts: upper, want: Strength{2, "Weak"}},
		{name: "twelve chars three types", password: strings.Repeat("x", 12), opts: three, want: Strength{3, "Medium"}},
		{name: "twelve chars two types", password: strings.Repeat("x", 12), opts: Options{Lowercase: true, Numbers: true}, want: Strength{2, "Weak"}},
		{name: "sixteen chars one type", password: strings.Repeat("x", 16), opts: upper, want: Strength{3, "Medium"}},
		{name: "sixteen chars three types", password: strings.Repeat("x", 16), opts: three, want: Strength{4, "Strong"}},
		{name: "sixteen chars all types", password: "Ab3$Ab3$Ab3$Ab3$", opts: all, want: Strength{4, "Secure"}},
		{name: "fifteen chars all types", password: strings.Repeat("x", 15), opts: all, want: Strength{3, "Medium"}},
		{name: "long all types", password: strings.Repeat("x", 64), opts: all, want: Strength{4, "Secure"}},
		{name: "types from options not content", password: "aaaaaaaaaaaaaaaa", opts: all, want: Strength{4, "Secure"}},
		{name: "counts runes", password: strings.Repeat("é", 8), opts: upper, want: Strength{2, "Weak"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.password, tt.opts))
		})
	}
}

func TestEstimateGeneratedPasswords(t *testing.T) {
	opts := DefaultOptions()
	password, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	assert.Equal(t, Strength{Score: 4, Label: "Secure"}, Estimate(password, opts))

	opts = Options{Length: 8, Uppercase: true}
	password, err = Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	assert.Equal(t, Strength{Score: 2, Label: "Weak"}, Estimate(password, opts))
}

func TestKeyStrength(t *testing.T) {
	assert.Equal(t, Strength{Score: 4, Label: "Secure Key"}, KeyStrength())
}
