// Package search wires the predicate, traversal, and observer layers
// together into a runnable search, and owns the on-disk configuration
// format the CLI loads and saves.
package search

import (
	"encoding/json"
	"os"
	"runtime"
	"time"

	"github.com/docker/go-units"
	"github.com/harrison/sift/internal/filelock"
	"github.com/harrison/sift/internal/searcherr"
)

// TraversalOrder selects how the single-threaded Finder mode walks a
// directory's children.
type TraversalOrder string

const (
	// BreadthFirst visits all entries at one depth before descending.
	BreadthFirst TraversalOrder = "bfs"
	// DepthFirst descends into each subdirectory as it's found.
	DepthFirst TraversalOrder = "dfs"
)

// Config is the persisted, JSON-serialized shape of a search. Every field
// round-trips through Config.Save/LoadConfig unchanged; unknown fields in a
// loaded file are ignored rather than rejected, and absent fields fall back
// to DefaultConfig's values.
type Config struct {
	Root string `json:"root"`

	NameSubstring   string `json:"name_substring,omitempty"`
	Extension       string `json:"extension,omitempty"`
	RegexInclude    string `json:"regex_include,omitempty"`
	RegexExclude    string `json:"regex_exclude,omitempty"`
	MinSize         int64  `json:"min_size,omitempty"`
	MaxSize         int64  `json:"max_size,omitempty"`
	NewerThanUnix   int64  `json:"newer_than,omitempty"`
	OlderThanUnix   int64  `json:"older_than,omitempty"`

	Recursive      bool           `json:"recursive"`
	FollowSymlinks bool           `json:"follow_symlinks"`
	// MaxDepth caps recursion to d levels below Root when non-nil; a
	// directory at depth d is still scanned but its subdirectories are not.
	// nil means unlimited. A pointer (rather than a zero-value-means-unset
	// int) is required so an explicit max_depth: 0 — root-only — round-trips
	// through JSON distinctly from "not specified".
	MaxDepth       *int           `json:"max_depth,omitempty"`
	Workers        int            `json:"workers,omitempty"`
	Advanced       bool           `json:"advanced"`
	TraversalOrder TraversalOrder `json:"traversal_order,omitempty"`
	IgnoreHidden   bool           `json:"ignore_hidden"`
	CaseSensitive  bool           `json:"case_sensitive_name"`

	GrepPattern     string `json:"grep_pattern,omitempty"`
	GrepIgnoreCase  bool   `json:"grep_ignore_case"`
	GrepLineNumber  bool   `json:"grep_line_number"`
	GrepFilesOnly   bool   `json:"grep_files_only"`

	Silent bool `json:"silent"`
	Quiet  bool `json:"quiet"`
}

// DefaultConfig returns the configuration a bare, flagless invocation runs
// with.
func DefaultConfig() Config {
	return Config{
		Root:           "",
		Recursive:      true,
		FollowSymlinks: false,
		Workers:        runtime.NumCPU(),
		Advanced:       false,
		TraversalOrder: BreadthFirst,
		IgnoreHidden:   false,
		CaseSensitive:  true,
	}
}

// LoadConfig reads and parses a JSON config file. A field missing from the
// file keeps its DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, searcherr.ConfigLoad(path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, searcherr.ConfigLoad(path, err)
	}
	return cfg, nil
}

// Save serializes the config to JSON and writes it atomically, under a file
// lock, via internal/filelock.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return searcherr.ConfigSave(path, err)
	}
	if err := filelock.WriteLocked(path, data); err != nil {
		return searcherr.ConfigSave(path, err)
	}
	return nil
}

// ParseHumanSize parses a human-readable byte size ("10MB", "1.5GiB") into
// bytes. An empty string parses to 0.
func ParseHumanSize(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, searcherr.InvalidArgument("invalid size " + s)
	}
	return n, nil
}

// ParseISODate parses a "2006-01-02" date string, taken in the local time
// zone, into a Unix timestamp. atEndOfDay selects 23:59:59 instead of 00:00:00, matching the
// older-than/newer-than bound conventions: a newer-than bound starts at the
// beginning of the named day, an older-than bound ends at the close of it.
func ParseISODate(s string, atEndOfDay bool) (int64, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return 0, searcherr.InvalidArgument("invalid date " + s + ", expected YYYY-MM-DD")
	}
	if atEndOfDay {
		t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return t.Unix(), nil
}
