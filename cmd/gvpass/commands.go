package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/gvpass/gvpass-go/internal/crypto"
)

var (
	errNoCategories = errors.New("at least one character category must be enabled")
	errCount        = errors.New("count must be at least 1")
)

// passwordCmd generates random passwords.
type passwordCmd struct {
	Length      int  `short:"l" default:"16" help:"Password length (0-${max_length})."`
	Uppercase   bool `default:"true" negatable:"" help:"Include uppercase letters."`
	Lowercase   bool `default:"true" negatable:"" help:"Include lowercase letters."`
	Numbers     bool `default:"true" negatable:"" help:"Include digits."`
	Symbols     bool `default:"true" negatable:"" help:"Include symbols."`
	RequireEach bool `help:"Guarantee at least one character from every enabled category."`

	Count        int  `short:"c" default:"1" help:"Number of passwords to generate."`
	ShowStrength bool `short:"s" help:"Print the strength estimate next to each password."`
}

func (c *passwordCmd) options() crypto.Options {
	return crypto.Options{
		Length:              c.Length,
		Uppercase:           c.Uppercase,
		Lowercase:           c.Lowercase,
		Numbers:             c.Numbers,
		Symbols:             c.Symbols,
		RequireEachCategory: c.RequireEach,
	}
}

// Run prints Count passwords, one per line.
func (c *passwordCmd) Run(k *kong.Context, gen *crypto.Generator) error {
	if c.Count < 1 {
		return errCount
	}
	opts := c.options()
	if opts.TypesEnabled() == 0 {
		return errNoCategories
	}

	for i := 0; i < c.Count; i++ {
		password, err := gen.Password(opts)
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		if c.ShowStrength {
			s := crypto.Estimate(password, opts)
			_, _ = fmt.Fprintf(k.Stdout, "%s\t%s (%d/%d)\n", password, s.Label, s.Score, crypto.MaxScore)
			continue
		}
		_, _ = fmt.Fprintln(k.Stdout, password)
	}
	return nil
}

// keyCmd generates Base64 encoded random keys.
type keyCmd struct {
	Bytes int  `short:"b" default:"32" help:"Number of random bytes (0-${max_key_size})."`
	URL   bool `short:"u" help:"Use unpadded URL-safe Base64."`
	Count int  `short:"c" default:"1" help:"Number of keys to generate."`
}

// Run prints Count keys, one per line.
func (c *keyCmd) Run(k *kong.Context, gen *crypto.Generator) error {
	if c.Count < 1 {
		return errCount
	}
	for i := 0; i < c.Count; i++ {
		key, err := gen.Key(c.Bytes, c.URL)
		if err != nil {
			return fmt.Errorf("generating key: %w", err)
		}
		_, _ = fmt.Fprintln(k.Stdout, key)
	}
	return nil
}

// strengthCmd rates a password the way generated passwords are rated.
type strengthCmd struct {
	Password  string `arg:"" help:"Password to rate."`
	Uppercase bool   `default:"true" negatable:"" help:"Uppercase letters were enabled."`
	Lowercase bool   `default:"true" negatable:"" help:"Lowercase letters were enabled."`
	Numbers   bool   `default:"true" negatable:"" help:"Digits were enabled."`
	Symbols   bool   `default:"true" negatable:"" help:"Symbols were enabled."`
}

// Run prints the score and label.
func (c *strengthCmd) Run(k *kong.Context) error {
	s := crypto.Estimate(c.Password, crypto.Options{
		Uppercase: c.Uppercase,
		Lowercase: c.Lowercase,
		Numbers:   c.Numbers,
		Symbols:   c.Symbols,
	})
	_, _ = fmt.Fprintf(k.Stdout, "%s (%d/%d)\n", s.Label, s.Score, crypto.MaxScore)
	return nil
}

// tokenCmd mints an operator token for the statistics endpoint.
type tokenCmd struct {
	Subject string        `default:"operator" help:"Operator name recorded in the token."`
	TTL     time.Duration `default:"24h" help:"Token lifetime."`
	Secret  string        `env:"JWT_SECRET" required:"" help:"Signing secret shared with the API server."`
}

// Run prints a signed token.
func (c *tokenCmd) Run(k *kong.Context) error {
	token, err := crypto.GenerateToken(c.Subject, crypto.ScopeStats, c.Secret, c.TTL)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}
	_, _ = fmt.Fprintln(k.Stdout, token)
	return nil
}
