package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	typedjson "github.com/reoring/typedjson"
	"github.com/reoring/typedjson/internal/jsonwire"
)

// CLI defines the command-line interface
var CLI struct {
	Input   string `help:"Path to input document. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	YAML    bool   `help:"Treat the input as YAML instead of JSON."`
	Indent  string `help:"Indentation unit for pretty output; empty emits compact JSON." short:"n"`
	Version bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("typedjson"),
		kong.Description("Validate a JSON or YAML document and emit its canonical JSON rendering"),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("typedjson version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "typedjson: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	data, err := readInput()
	if err != nil {
		return err
	}
	out, err := canonicalize(data, CLI.YAML, CLI.Indent)
	if err != nil {
		return err
	}
	return writeOutput(out)
}

// canonicalize decodes one document and re-encodes it deterministically
// (object keys sorted, numbers preserved verbatim).
func canonicalize(data []byte, asYAML bool, indent string) ([]byte, error) {
	var src typedjson.Source
	if asYAML {
		src = typedjson.YAMLBytes(data)
	} else {
		src = typedjson.JSONBytes(data)
	}
	doc, err := src.DecodeDocument()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name(), err)
	}
	if indent != "" {
		return jsonwire.EncodeIndent(doc, indent)
	}
	return jsonwire.Encode(doc)
}

func readInput() ([]byte, error) {
	if CLI.Input != "" {
		return os.ReadFile(CLI.Input)
	}
	return io.ReadAll(os.Stdin)
}

func writeOutput(out []byte) error {
	out = append(out, '\n')
	if CLI.Output != "" {
		return os.WriteFile(CLI.Output, out, 0o644)
	}
	_, err := os.Stdout.Write(out)
	return err
}
