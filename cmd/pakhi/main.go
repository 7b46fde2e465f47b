// Command pakhi runs a Pakhi source file. No CLI framework: a plain
// run(args) int function switches on the first argument, and every exit
// path funnels through os.Exit.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pakhi-lang/pakhi/pkg/driver"
	"github.com/pakhi-lang/pakhi/pkg/host"
	"github.com/pakhi-lang/pakhi/pkg/interpreter"
	"github.com/pakhi-lang/pakhi/pkg/lexer"
	"github.com/pakhi-lang/pakhi/pkg/parser"
)

const cliToolVersion = "pakhi 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "deps":
		return runDeps(args[1:])
	default:
		return runEntry(args)
	}
}

func runEntry(args []string) int {
	entry, libraryPaths, platform, err := resolveEntry(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	h := host.WithPlatformOverride(host.NewOSHost(), platform)
	it := interpreter.New(h, os.Stdout, libraryPaths)
	if err := it.RunFile(entry); err != nil {
		reportError(err)
		return 1
	}
	return 0
}

func runDeps(args []string) int {
	entry, libraryPaths, platform, err := resolveEntry(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	h := host.WithPlatformOverride(host.NewOSHost(), platform)
	it := interpreter.New(h, os.Stdout, libraryPaths)
	if err := it.RunFile(entry); err != nil {
		reportError(err)
		return 1
	}
	for _, path := range it.Table().Order() {
		fmt.Fprintln(os.Stdout, path)
	}
	return 0
}

// resolveEntry finds the source file to run, either named directly or
// through a pakhi.yaml manifest in the current directory, and returns
// the manifest's platform override. When a file is named directly the
// manifest is not read, so library paths and platform are both empty;
// the platform is also empty when the manifest sets no override.
func resolveEntry(args []string) (entry string, libraryPaths []string, platform string, err error) {
	if len(args) > 1 {
		return "", nil, "", fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
	if len(args) == 1 {
		return args[0], nil, "", nil
	}

	manifest, err := driver.LoadManifest(".")
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to load pakhi.yaml: %w", err)
	}
	if manifest == nil {
		return "", nil, "", fmt.Errorf("pakhi requires a source file (no pakhi.yaml found in the current directory)")
	}
	entry, err = manifest.ResolveEntry()
	if err != nil {
		return "", nil, "", fmt.Errorf("manifest error: %w", err)
	}
	return entry, manifest.LibraryPaths, manifest.Platform, nil
}

// reportError classifies err against the runtime error taxonomy and
// prints a diagnostic to stderr. The classification is for consistent
// formatting only; every path already sets the same exit code.
func reportError(err error) {
	var lexErr *lexer.Error
	var parseErr *parser.Error
	var resolveErr *driver.ResolveError
	var runtimeErr *interpreter.RuntimeError
	var ioErr *host.IOError

	switch {
	case errors.As(err, &lexErr):
		fmt.Fprintf(os.Stderr, "lex error: %s: %s\n", lexErr.Pos, lexErr.Message)
	case errors.As(err, &parseErr):
		fmt.Fprintf(os.Stderr, "parse error: %s\n", parseErr.Error())
	case errors.As(err, &resolveErr):
		fmt.Fprintf(os.Stderr, "module error: %s\n", resolveErr.Message)
	case errors.As(err, &runtimeErr):
		fmt.Fprintf(os.Stderr, "runtime error: %s\n", runtimeErr.Error())
	case errors.As(err, &ioErr):
		fmt.Fprintf(os.Stderr, "io error: %s\n", ioErr.Error())
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pakhi <file.pakhi>")
	fmt.Fprintln(os.Stderr, "  pakhi run <file.pakhi>")
	fmt.Fprintln(os.Stderr, "  pakhi deps <file.pakhi>")
	fmt.Fprintln(os.Stderr, "  pakhi --version")
}
