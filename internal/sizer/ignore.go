package sizer

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/moby/patternmatcher"
)

// IgnoreFile is the per-directory rule file honored during traversal.
const IgnoreFile = ".gitignore"

// ignoreScope holds the compiled ignore rules of one directory, chained to
// the nearest ancestor directory that also carries rules. Paths are matched
// relative to the directory owning the rules, nearest scope first.
type ignoreScope struct {
	parent  *ignoreScope
	dir     string
	matcher *patternmatcher.PatternMatcher
}

// loadIgnoreScope compiles dir's ignore file into a scope chained onto
// parent. A missing, unreadable, or empty file yields parent unchanged;
// rules must never make sizing fail.
func loadIgnoreScope(parent *ignoreScope, dir string) *ignoreScope {
	file, err := os.Open(filepath.Join(dir, IgnoreFile))
	if err != nil {
		return parent
	}
	defer file.Close()

	patterns := readIgnorePatterns(file)
	if len(patterns) == 0 {
		return parent
	}

	matcher, err := patternmatcher.New(patterns)
	if err != nil {
		return parent
	}

	return &ignoreScope{
		parent:  parent,
		dir:     dir,
		matcher: matcher,
	}
}

// readIgnorePatterns extracts the patterns from an ignore file: one per
// line, blank lines and comments dropped. Patterns follow version-control
// ignore conventions, so a pattern without a slash applies at any depth
// below the owning directory; those are rewritten with a "**/" prefix for
// the matcher, which anchors patterns by default.
func readIgnorePatterns(r io.Reader) []string {
	var patterns []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		negate := strings.HasPrefix(line, "!")
		if negate {
			line = strings.TrimPrefix(line, "!")
		}

		// Directory-only patterns keep their meaning without the slash.
		line = strings.TrimSuffix(line, "/")

		anchored := strings.Contains(line, "/")
		line = strings.TrimPrefix(line, "/")

		if !anchored {
			line = "**/" + line
		}

		if negate {
			line = "!" + line
		}

		patterns = append(patterns, line)
	}

	return patterns
}

// excluded reports whether path is matched by any scope applicable to it.
// Scopes are consulted nearest first, mirroring how version control applies
// the closest ignore file.
func (s *ignoreScope) excluded(path string) bool {
	for scope := s; scope != nil; scope = scope.parent {
		rel, err := filepath.Rel(scope.dir, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}

		if matched, err := scope.matcher.MatchesOrParentMatches(filepath.ToSlash(rel)); err == nil && matched {
			return true
		}
	}

	return false
}
