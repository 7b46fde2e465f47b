// Package driver implements module resolution: turning a মডিউল
// statement's raw path into a canonical file, tracking which modules are
// mid-load versus finished, and detecting import cycles.
package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pakhi-lang/pakhi/pkg/ast"
	"github.com/pakhi-lang/pakhi/pkg/host"
	"github.com/pakhi-lang/pakhi/pkg/runtime"
)

// LoadState tracks where a module is in the resolve/evaluate lifecycle.
type LoadState int

const (
	Loading LoadState = iota
	Loaded
)

// Entry is one module's bookkeeping record. AST and Env are filled in by
// the interpreter once it has parsed and evaluated the module's top
// level; the Table only owns Path and State until then.
type Entry struct {
	Path  string
	AST   *ast.Module
	Env   *runtime.Environment
	State LoadState
}

// Status reports what Begin found for a canonical path.
type Status int

const (
	StatusNew Status = iota
	StatusLoaded
	StatusCycle
)

// Table is the process-wide module table: one entry per canonical path,
// reused across every মডিউল statement that names it, so a module's top
// level runs at most once no matter how many importers name it.
type Table struct {
	host         host.Host
	libraryPaths []string
	entries      map[string]*Entry
	stack        []string
	order        []string
}

// NewTable constructs an empty module table. libraryPaths are extra
// search roots consulted when a module path doesn't resolve relative to
// the importing module's directory, in the order given (a manifest's
// library_paths list, typically).
func NewTable(h host.Host, libraryPaths []string) *Table {
	return &Table{
		host:         h,
		libraryPaths: libraryPaths,
		entries:      make(map[string]*Entry),
	}
}

func (t *Table) candidates(importerDir, rawPath string) []string {
	primary := rawPath
	if !filepath.IsAbs(primary) {
		primary = filepath.Join(importerDir, rawPath)
	}
	out := []string{filepath.Clean(primary)}
	for _, lp := range t.libraryPaths {
		out = append(out, filepath.Clean(filepath.Join(lp, rawPath)))
	}
	return out
}

// Load resolves rawPath (as written in a মডিউল statement in the module
// whose directory is importerDir) to a canonical path and its source
// text, trying importerDir first and then each configured library path.
// All file access goes through the Host, never the real filesystem
// directly.
func (t *Table) Load(importerDir, rawPath string) (canonical string, source string, err error) {
	cands := t.candidates(importerDir, rawPath)
	for _, cand := range cands {
		src, rerr := t.host.ReadFile(cand)
		if rerr == nil {
			return cand, src, nil
		}
	}
	return "", "", &ResolveError{
		Kind:    MissingFile,
		Message: fmt.Sprintf("module not found: %q (tried %s)", rawPath, strings.Join(cands, ", ")),
	}
}

// Begin registers canonical as in progress, or reports that it is
// already Loaded (reuse) or already Loading higher up the current
// import chain (a cycle). Callers must pair a StatusNew result with a
// later Finish call.
func (t *Table) Begin(canonical string) (*Entry, Status) {
	if e, ok := t.entries[canonical]; ok {
		if e.State == Loaded {
			return e, StatusLoaded
		}
		return e, StatusCycle
	}
	e := &Entry{Path: canonical, State: Loading}
	t.entries[canonical] = e
	t.stack = append(t.stack, canonical)
	return e, StatusNew
}

// CycleError builds the ResolveError naming the full import chain from
// the outermost in-progress module down to the one that closes the
// cycle back on canonical.
func (t *Table) CycleError(canonical string) *ResolveError {
	chain := append(append([]string{}, t.stack...), canonical)
	return &ResolveError{
		Kind:    Cycle,
		Message: "cyclic import: " + strings.Join(chain, " -> "),
	}
}

// Finish records a module's parsed AST and evaluated environment and
// marks it Loaded.
func (t *Table) Finish(e *Entry, mod *ast.Module, env *runtime.Environment) {
	e.AST = mod
	e.Env = env
	e.State = Loaded
	if n := len(t.stack); n > 0 && t.stack[n-1] == e.Path {
		t.stack = t.stack[:n-1]
	}
	t.order = append(t.order, e.Path)
}

// Order returns canonical module paths in the order they finished
// loading, entry module last. Used by the "pakhi deps" subcommand.
func (t *Table) Order() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Lookup returns the entry for a canonical path, if one has been
// registered at all (including still-Loading entries).
func (t *Table) Lookup(canonical string) (*Entry, bool) {
	e, ok := t.entries[canonical]
	return e, ok
}
