// Command lottiecat inspects Lottie/Bodymovin animation JSON files without
// rendering them: structural summaries, path queries, and a redaction mode
// for sharing an animation file without its embedded image payloads.
package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/dhawalhost/glottie"
	"github.com/dhawalhost/glottie/internal/lottiecat"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := lottiecat.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	buf, err := os.ReadFile(cfg.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read %s: %v\n", cfg.File, err)
		return 1
	}

	if cfg.Validate {
		p := glottie.New(buf)
		if !p.IsValid() {
			fmt.Fprintf(os.Stderr, "%s: %v\n", cfg.File, p.Err())
			return 1
		}
		fmt.Fprintf(os.Stdout, "%s: ok\n", cfg.File)
		return 0
	}

	if cfg.Report {
		report, err := lottiecat.Report(buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(os.Stdout, report)
		return 0
	}

	if cfg.Redact {
		redacted, err := lottiecat.Redact(buf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		buf = redacted
	}

	if cfg.Query != "" {
		result := gjson.GetBytes(buf, cfg.Query)
		if !result.Exists() {
			fmt.Fprintf(os.Stderr, "Error: query %q matched nothing\n", cfg.Query)
			return 1
		}
		fmt.Fprintln(os.Stdout, result.Raw)
		return 0
	}

	if cfg.Pretty {
		buf = pretty.Pretty(buf)
	}

	os.Stdout.Write(buf)
	return 0
}
