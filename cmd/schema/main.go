package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/fetchsched/pkg/config"
)

// Opts with all CLI options
type Opts struct {
	Check bool `long:"check" description:"compare generated schema with the existing file instead of writing it"`
	Args  struct {
		Output string `positional-arg-name:"output" description:"schema file" default:"pkg/config/schema.json"`
	} `positional-args:"yes"`
}

// errOutdated is returned in check mode when the file differs from the generated schema
var errOutdated = errors.New("schema is outdated, run go generate ./pkg/config")

func main() {
	var opts Opts
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	msg, err := run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Println(msg)
}

// run writes the config schema to the output file, or verifies the file matches it in check mode
func run(opts Opts) (string, error) {
	data, err := generate()
	if err != nil {
		return "", err
	}

	if opts.Check {
		existing, err := os.ReadFile(opts.Args.Output)
		if err != nil {
			return "", fmt.Errorf("read schema file: %w", err)
		}
		if !bytes.Equal(bytes.TrimSpace(existing), bytes.TrimSpace(data)) {
			return "", fmt.Errorf("%s: %w", opts.Args.Output, errOutdated)
		}
		return fmt.Sprintf("Schema at %s is up to date", opts.Args.Output), nil
	}

	if err := os.WriteFile(opts.Args.Output, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return "", fmt.Errorf("write schema file: %w", err)
	}
	return fmt.Sprintf("Schema generated successfully at %s", opts.Args.Output), nil
}

// generate reflects the config schema into indented JSON with a trailing newline
func generate() ([]byte, error) {
	schema, err := config.GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
