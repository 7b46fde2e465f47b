package host

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// MemHost is an in-memory Host fake used by evaluator tests so built-in
// I/O can be exercised without touching the real filesystem.
type MemHost struct {
	Lines    []string
	lineIdx  int
	files    map[string]string
	dirs     map[string]bool
	platform string
}

// NewMemHost constructs an empty in-memory host. The platform name
// defaults to "linux" unless overridden with SetPlatform.
func NewMemHost() *MemHost {
	return &MemHost{
		files:    make(map[string]string),
		dirs:     map[string]bool{"/": true},
		platform: "linux",
	}
}

func (h *MemHost) SetPlatform(p string) { h.platform = p }

func (h *MemHost) ReadLine() (string, error) {
	if h.lineIdx >= len(h.Lines) {
		return "", &IOError{Op: "read-line", Path: "<stdin>", Err: io.EOF}
	}
	line := h.Lines[h.lineIdx]
	h.lineIdx++
	return line, nil
}

func (h *MemHost) ReadFile(p string) (string, error) {
	content, ok := h.files[p]
	if !ok {
		return "", &IOError{Op: "read-file", Path: p, Err: fmt.Errorf("no such file")}
	}
	return content, nil
}

func (h *MemHost) WriteFile(p, content string) error {
	h.files[p] = content
	h.dirs[path.Dir(p)] = true
	return nil
}

func (h *MemHost) DeleteFile(p string) error {
	if _, ok := h.files[p]; !ok {
		return &IOError{Op: "delete-file", Path: p, Err: fmt.Errorf("no such file")}
	}
	delete(h.files, p)
	return nil
}

func (h *MemHost) MakeDirectory(p string) error {
	h.dirs[p] = true
	return nil
}

func (h *MemHost) ReadDirectory(p string) ([]string, error) {
	if !h.dirs[p] {
		return nil, &IOError{Op: "read-directory", Path: p, Err: fmt.Errorf("no such directory")}
	}
	seen := make(map[string]bool)
	for f := range h.files {
		if path.Dir(f) == p {
			seen[path.Base(f)] = true
		}
	}
	for d := range h.dirs {
		if d != p && path.Dir(d) == p {
			seen[path.Base(d)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (h *MemHost) DeleteDirectory(p string) error {
	if !h.dirs[p] {
		return &IOError{Op: "delete-directory", Path: p, Err: fmt.Errorf("no such directory")}
	}
	delete(h.dirs, p)
	for f := range h.files {
		if strings.HasPrefix(f, p+"/") {
			delete(h.files, f)
		}
	}
	return nil
}

func (h *MemHost) Stat(p string) (EntryKind, error) {
	if h.dirs[p] {
		return EntryDirectory, nil
	}
	if _, ok := h.files[p]; ok {
		return EntryFile, nil
	}
	return "", &IOError{Op: "file-or-directory", Path: p, Err: fmt.Errorf("no such path")}
}

func (h *MemHost) Platform() string { return h.platform }
