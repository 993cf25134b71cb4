package lottiecat

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/dhawalhost/glottie/internal/lottiecat/exit"
)

var (
	ErrNoArguments = errors.New("no arguments provided")
	ErrNoFile      = errors.New("no animation file specified")
)

// Config is the parsed command line for lottiecat.
type Config struct {
	File     string
	Query    string // -query: a gjson path evaluated against the raw document
	Redact   bool   // -redact: strip assets[].p base64 payloads before printing
	Pretty   bool   // -pretty: run the (possibly redacted) document through tidwall/pretty; -query and -report output is not affected
	Report   bool   // -report: print a gabs-built structural summary instead of the document
	Validate bool   // -validate: parse with the model builder and print "<file>: ok" or "<file>: " followed by Parser.Err(), nothing else
}

// Parse parses command-line arguments and returns a validated Config.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		query    = fs.String("query", "", "gjson path to extract, e.g. layers.0.nm")
		redact   = fs.Bool("redact", false, "strip embedded base64 image data from assets before printing")
		pretty   = fs.Bool("pretty", false, "pretty-print the output")
		report   = fs.Bool("report", false, "print a structural summary (layer/shape/asset counts) instead of the document")
		validate = fs.Bool("validate", false, "parse the file and report whether it is a well-formed composition")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	files := fs.Args()
	if len(files) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoFile, Usage())
	}

	cfg := &Config{
		File:     files[0],
		Query:    *query,
		Redact:   *redact,
		Pretty:   *pretty,
		Report:   *report,
		Validate: *validate,
	}

	if _, err := os.Stat(cfg.File); err != nil {
		return nil, exit.Errorf("Error: animation file %s not found: %v\n\n%s", cfg.File, err, Usage())
	}

	return cfg, nil
}

// Usage returns the CLI's help text.
func Usage() string {
	return `lottiecat - inspect Lottie/Bodymovin animation JSON

Usage: lottiecat [options] <file.json>

Options:
  -query PATH     Extract a single value by gjson path, e.g. -query layers.0.nm
  -redact         Strip embedded base64 image data from assets[].p before printing
  -pretty         Pretty-print the output
  -report         Print a structural summary (layer/shape/asset counts) instead of the document
  -validate       Parse the file with the model builder and report whether it is well-formed
  -h, --help      Show this help message

Examples:
  lottiecat -report animation.json
  lottiecat -query layers.0.nm animation.json
  lottiecat -redact -pretty animation.json
  lottiecat -validate animation.json`
}
