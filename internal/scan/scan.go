// Package scan provides directory enumeration with a bounded recursion
// depth and extension classification for the scanned entries.
package scan

import (
	"path"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/gobwas/glob"

	serr "renum/internal/errors"
	"renum/internal/log"
)

// Entry is a single enumerated path.
type Entry struct {
	Path  string
	IsDir bool
}

// Scanner enumerates directory trees over a billy filesystem. Paths whose
// base name matches an ignore pattern are dropped; ignored directories are
// not descended into.
type Scanner struct {
	fs     billy.Filesystem
	ignore []glob.Glob
}

// New creates a Scanner over the given filesystem.
func New(fsys billy.Filesystem) *Scanner {
	return &Scanner{fs: fsys}
}

// NewWithIgnore creates a Scanner that skips entries matching any of the
// given glob patterns. Returns an error if a pattern does not compile.
func NewWithIgnore(fsys billy.Filesystem, patterns []string) (*Scanner, error) {
	s := &Scanner{fs: fsys}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, serr.NewConfigError("invalid ignore pattern", p, serr.InvalidConfig, err)
		}
		s.ignore = append(s.ignore, g)
	}
	return s, nil
}

// List returns the immediate children of dir in enumeration order.
func (s *Scanner) List(dir string) ([]Entry, error) {
	infos, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, serr.NewFileError("failed to read directory", dir, serr.DirectoryReadFailed, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if s.ignored(info.Name()) {
			log.Debug("ignoring %s", s.fs.Join(dir, info.Name()))
			continue
		}
		entries = append(entries, Entry{
			Path:  s.fs.Join(dir, info.Name()),
			IsDir: info.IsDir(),
		})
	}
	return entries, nil
}

// ListRecursive performs a depth-first enumeration of dir. Each child is
// followed immediately by its own recursive listing when it is a directory
// and depth > 0; depth counts additional levels beyond dir, so depth 0 is a
// plain non-recursive listing. Symlink cycles are not detected; the depth
// bound caps traversal regardless.
func (s *Scanner) ListRecursive(dir string, depth int) ([]Entry, error) {
	children, err := s.List(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, child := range children {
		entries = append(entries, child)
		if child.IsDir && depth > 0 {
			sub, err := s.ListRecursive(child.Path, depth-1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
		}
	}
	return entries, nil
}

func (s *Scanner) ignored(name string) bool {
	for _, g := range s.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Extension returns the lower-cased extension of the final path component:
// the substring after the last dot. A name with no dot, a name whose only
// dot leads it (dotfiles like .gitignore), and a name ending in a dot all
// classify as "". An extension that is not valid UTF-8 is an unrecoverable
// input error.
func Extension(p string) (string, error) {
	base := path.Base(p)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 || idx == len(base)-1 {
		return "", nil
	}
	ext := base[idx+1:]
	if !utf8.ValidString(ext) {
		return "", serr.NewFileError("extension is not valid UTF-8", p, serr.EncodingInvalid, nil)
	}
	return strings.ToLower(ext), nil
}
