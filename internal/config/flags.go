package config

import (
	"flag"
	"os"

	"github.com/scana-dk/scana/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   DSN/path of the local database (default from Config)
//	-l string   default UI language code (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path or DSN of the local database")
	fs.StringVar(&cfg.DefaultLanguage, "l", cfg.DefaultLanguage, "default UI language code")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
