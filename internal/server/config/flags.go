package config

import (
	"flag"
	"os"
	"time"

	"github.com/dberestov/microblog/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-i string   token issuer
//	-t int      token validity, minutes
//
// Bind addresses and dial targets are set via defaults or the JSON file;
// only the values that differ per deployment get a flag. The function first
// filters os.Args to the flags it recognizes using flagx.FilterArgs,
// avoiding collisions with the -c/-config flags handled elsewhere.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-i", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token secret key")
	fs.StringVar(&config.TokenIssuer, "i", config.TokenIssuer, "token issuer")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Minutes()), "token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Minute
}
