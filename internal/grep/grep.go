// Package grep implements the content-scanning stage that runs after file
// discovery: given a pre-filtered list of paths and a pattern, it scans each
// file line by line and reports matches, or, in files-with-matches mode,
// just the distinct paths that matched at least once.
package grep

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/coregx/coregex"

	"github.com/harrison/sift/internal/searcherr"
)

// Match is one matching line: Line is 1-based, per the spec's GrepMatch
// entity.
type Match struct {
	Path string
	Line int
	Text string
}

// Engine scans a fixed set of files with a single compiled pattern, shared
// across every file it opens.
type Engine struct {
	pattern *coregex.Regex
}

// New compiles pattern once for the whole engine. ignoreCase folds case by
// prefixing the pattern with coregex's inline (?i) flag, the same
// convention internal/predicate and internal/traversal use for their regex
// variants.
func New(pattern string, ignoreCase bool) (*Engine, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, searcherr.RegexCompile(pattern, err)
	}
	return &Engine{pattern: re}, nil
}

// ScanFile reads path line by line and returns every matching line. A
// permission-denied open is reported as (nil, nil): the caller treats a nil
// error as "nothing to report" rather than a scan failure. Any other I/O
// error is wrapped with path context. Lines are not decoded, so invalid
// UTF-8 is matched as raw bytes. A line longer than 1 MiB stops the scan of
// that file: the matches found before it are returned together with an I/O
// error, and the lines after it are not scanned.
func (e *Engine) ScanFile(path string) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, nil
		}
		return nil, searcherr.IO(path, err)
	}
	defer f.Close()

	var matches []Match
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if e.pattern.MatchString(line) {
			matches = append(matches, Match{Path: path, Line: lineNum, Text: line})
		}
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return matches, searcherr.IO(path, err)
	}
	return matches, nil
}

// ScanAll runs ScanFile across every path in files, in order, collecting
// every match. A scan error on one file is reported through errSink (when
// non-nil) and does not stop the remaining files from being scanned.
func (e *Engine) ScanAll(files []string, errSink func(error)) []Match {
	var all []Match
	for _, path := range files {
		matches, err := e.ScanFile(path)
		if err != nil && errSink != nil {
			errSink(err)
		}
		all = append(all, matches...)
	}
	return all
}

// FilesWithMatches runs ScanAll and reduces it to the distinct, order
// preserved list of paths that matched at least once, per the spec's
// files-with-matches reporting mode.
func (e *Engine) FilesWithMatches(files []string, errSink func(error)) []string {
	matches := e.ScanAll(files, errSink)

	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		if _, ok := seen[m.Path]; ok {
			continue
		}
		seen[m.Path] = struct{}{}
		out = append(out, m.Path)
	}
	return out
}

// WriteLineMatches writes matches to w grouped by file: one header line per
// path (printed once), followed by every matching line for that file,
// optionally prefixed with its 1-based line number.
func WriteLineMatches(w io.Writer, matches []Match, showLineNumber bool) error {
	lastPath := ""
	for _, m := range matches {
		if m.Path != lastPath {
			if _, err := fmt.Fprintln(w, m.Path+":"); err != nil {
				return err
			}
			lastPath = m.Path
		}
		var err error
		if showLineNumber {
			_, err = fmt.Fprintf(w, "%d: %s\n", m.Line, m.Text)
		} else {
			_, err = fmt.Fprintln(w, m.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
