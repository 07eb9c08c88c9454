package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"

	tlascan "github.com/tlaplus-go/scanner"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

const usage = `scanfmt: a diagnostic driver for the TLA+ external scanner.

Usage:
  scanfmt <command> [arguments]

Commands:
  trace [path ...]   scan files and print the emitted token stream
  check [path ...]   scan files and verify the serialize/deserialize round trip
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	traceCmd := flag.NewFlagSet("trace", flag.ExitOnError)
	traceJSON := traceCmd.Bool("json", false, "output the token stream as JSON")
	traceStyle := traceCmd.String("style", "default", "output style (default, compact)")
	traceColumn := traceCmd.Bool("column", true, "include line:column in default-style output")
	traceConcurrent := traceCmd.Bool("concurrent", false, "trace files across a worker pool")

	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
	checkJSON := checkCmd.Bool("json", false, "output check results as JSON")
	checkResume := checkCmd.Bool("resume", false, "serialize final state and resume a fresh scanner from it before comparing")
	checkConcurrent := checkCmd.Bool("concurrent", false, "check files across a worker pool")

	switch os.Args[1] {
	case "trace":
		traceCmd.Parse(os.Args[2:])
		paths := traceCmd.Args()
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "Error: missing file paths for trace command.")
			os.Exit(1)
		}
		opts := TraceOptions{Style: parseTraceStyle(*traceStyle), ShowColumn: *traceColumn}
		if err := runTrace(paths, opts, *traceJSON, *traceConcurrent); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		checkCmd.Parse(os.Args[2:])
		paths := checkCmd.Args()
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "Error: missing file paths for check command.")
			os.Exit(1)
		}
		if err := runCheck(paths, *checkResume, *checkJSON, *checkConcurrent); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %q\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runTrace(paths []string, opts TraceOptions, jsonOutput, concurrent bool) error {
	if jsonOutput {
		results := make(map[string][]TraceToken, len(paths))
		var mu sync.Mutex
		visit := func(path string) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("could not read file %s: %w", path, err)
			}
			s := tlascan.AcquireScanner()
			defer tlascan.ReleaseScanner(s)
			tokens := traceSource(s, data)
			mu.Lock()
			results[path] = tokens
			mu.Unlock()
			return nil
		}
		if err := visitAll(paths, concurrent, visit); err != nil {
			return err
		}
		return json.MarshalWrite(os.Stdout, results, jsontext.Multiline(true), jsontext.WithIndent("  "))
	}

	visit := func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read file %s: %w", path, err)
		}
		s := tlascan.AcquireScanner()
		defer tlascan.ReleaseScanner(s)
		fmt.Printf("== %s ==\n", path)
		printTrace(os.Stdout, traceSource(s, data), opts)
		return nil
	}
	return visitAll(paths, concurrent, visit)
}

// CheckResult reports whether a file's final scanner state survives a
// serialize/deserialize round trip (spec §8, P1) at the CLI level.
type CheckResult struct {
	Path        string `json:"path"`
	TokenCount  int    `json:"tokenCount"`
	FinalDepth  int    `json:"finalDepth"`
	RoundTripOK bool   `json:"roundTripOK"`
	Error       string `json:"error,omitempty"`
}

func runCheck(paths []string, resume, jsonOutput, concurrent bool) error {
	results := make([]CheckResult, len(paths))
	var mu sync.Mutex

	visit := func(i int) func(string) error {
		return func(path string) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("could not read file %s: %w", path, err)
			}
			s := tlascan.AcquireScanner()
			defer tlascan.ReleaseScanner(s)
			tokens := traceSource(s, data)

			ok := true
			var scanErr error
			if resume {
				buf := s.Serialize()
				restored := tlascan.NewScanner()
				if err := restored.Deserialize(buf); err != nil {
					ok = false
					scanErr = &tlascan.ScanError{Op: "deserialize", Err: err}
				} else if restored.Depth() != s.Depth() {
					ok = false
					scanErr = &tlascan.ScanError{Op: "deserialize", Err: errors.New("restored depth does not match final depth")}
				}
			}

			result := CheckResult{Path: path, TokenCount: len(tokens), FinalDepth: s.Depth(), RoundTripOK: ok}
			if scanErr != nil {
				result.Error = scanErr.Error()
			}
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		}
	}

	// Index paths up front so concurrent workers can write results
	// without a shared slice race.
	indexed := make([]string, len(paths))
	copy(indexed, paths)
	fns := make([]func(string) error, len(paths))
	for i := range paths {
		fns[i] = visit(i)
	}
	if err := visitAllIndexed(indexed, fns, concurrent); err != nil {
		return err
	}

	if jsonOutput {
		return json.MarshalWrite(os.Stdout, results, jsontext.Multiline(true), jsontext.WithIndent("  "))
	}

	failed := false
	for _, r := range results {
		status := "ok"
		if resume && !r.RoundTripOK {
			status = "FAILED"
			failed = true
		}
		fmt.Printf("%s: %d tokens, final depth %d, round trip %s\n", r.Path, r.TokenCount, r.FinalDepth, status)
		if r.Error != "" {
			fmt.Printf("  %s\n", r.Error)
		}
	}
	if failed {
		return fmt.Errorf("one or more files failed the state round trip")
	}
	return nil
}
