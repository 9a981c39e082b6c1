// Package main implements the gvpass command line tool.
package main

import (
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/gvpass/gvpass-go/internal/crypto"
)

// The top-level gvpass CLI.
type cli struct {
	Password passwordCmd `cmd:"" default:"1" help:"Generate random passwords."`
	Key      keyCmd      `cmd:"" help:"Generate Base64 encoded random keys."`
	Strength strengthCmd `cmd:"" help:"Estimate the strength of a password."`
	Token    tokenCmd    `cmd:"" help:"Mint an operator token for the statistics API."`
}

func vars() kong.Vars {
	return kong.Vars{
		"max_length":   strconv.Itoa(crypto.MaxLength),
		"max_key_size": strconv.Itoa(crypto.MaxKeySize),
	}
}

func main() {
	// JWT_SECRET may live in .env next to the API server's settings.
	_ = godotenv.Load()

	ctx := kong.Parse(&cli{},
		kong.Name("gvpass"),
		kong.Description("Generate random passwords and high-entropy keys."),
		vars(),
		kong.Bind(crypto.NewGenerator(nil)),
		kong.ConfigureHelp(kong.HelpOptions{
			FlagsLast: true,
			Compact:   true,
		}),
		kong.UsageOnError())

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
