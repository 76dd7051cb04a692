package config

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/go4sqlite/go4sqlite"
	"github.com/go4sqlite/go4sqlite/internal/version"
)

// Config represents the configuration for the interactive shell.
type Config struct {
	DatabasePath string `arg:"positional" help:"Path of the SQLite database to open (defaults to an in-memory database)" default:":memory:"`
	ReadOnly     bool   `arg:"--readonly" help:"Open the database read-only"`
	NoCreate     bool   `arg:"--no-create" help:"Fail instead of creating the database file when it does not exist"`
	VFS          string `arg:"--vfs" help:"Name of the SQLite VFS to use instead of the default one"`
	LogFile      string `arg:"--log-file" help:"Path of a file to append the structured query log to"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.ShellVersion())
}

// OpenFlags translates the access-mode options into engine open flags.
func (c Config) OpenFlags() go4sqlite.OpenFlag {
	if c.ReadOnly {
		return go4sqlite.OpenReadOnly
	}
	if c.NoCreate {
		return go4sqlite.OpenReadWrite
	}
	return go4sqlite.OpenCreateReadWrite
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := arg.NewParser(
		arg.Config{},
		&cfg,
	)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if cfg.ReadOnly && cfg.NoCreate {
		log.Fatal("--readonly and --no-create are mutually exclusive")
	}

	return cfg
}
