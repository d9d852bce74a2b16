// Package cmd wires the command-line surface onto the search engine: flag
// parsing and validation, config load/save, and driving Finder and the grep
// engine. Everything here is a thin, explicitly out-of-scope collaborator
// per the spec — the engine itself lives in internal/search,
// internal/predicate, internal/traversal, internal/observer,
// internal/workerpool, and internal/grep.
package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/sift/internal/display"
	"github.com/harrison/sift/internal/grep"
	"github.com/harrison/sift/internal/logger"
	"github.com/harrison/sift/internal/search"
	"github.com/harrison/sift/internal/searcherr"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// defaultRoot is the platform's root directory, used when no -p/--path is
// given. Per spec §9, this matches the later of the two conflicting
// revisions in the original source rather than falling back to the
// current directory.
func defaultRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

// flags holds every CLI flag's raw value, before it's merged with a loaded
// config file (if any) and validated into a search.Config.
type flags struct {
	path             string
	ext              string
	name             string
	grepPattern      string
	ignoreCase       bool
	lineNumber       bool
	filesWithMatches bool
	advanced         bool
	silent           bool
	quiet            bool
	workers          int
	configPath       string
	saveConfigPath   string
	traversal        string
	noRecursive      bool
	followSymlinks   bool
	minSize          string
	maxSize          string
	newerThan        string
	olderThan        string
	ignoreHidden     bool
}

// NewRootCommand builds the sift root command: a single, flag-driven
// command rather than a subcommand tree, matching the CLI surface in
// spec §6.
func NewRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:     "sift [QUERY]",
		Short:   "A high-throughput filesystem search engine",
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		// Silence both cobra defaults: run() already prints one diagnostic
		// line per fatal error, and the full help text on top of it would
		// violate the single-diagnostic-line requirement (spec §7).
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return run(c.OutOrStdout(), c.ErrOrStderr(), f, query)
		},
	}

	flagSet := cmd.Flags()
	flagSet.StringVarP(&f.path, "path", "p", "", "root directory to search (default: platform root)")
	flagSet.StringVarP(&f.ext, "ext", "e", "", "filter by file extension")
	flagSet.StringVarP(&f.name, "name", "n", "", "filter by name substring")
	flagSet.StringVarP(&f.grepPattern, "grep", "g", "", "switch to content-grep mode with this regex")
	flagSet.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "case-insensitive grep")
	flagSet.BoolVar(&f.lineNumber, "line-number", false, "show line numbers in grep output")
	flagSet.BoolVar(&f.filesWithMatches, "files-with-matches", false, "list only file names in grep output")
	flagSet.BoolVarP(&f.advanced, "advanced", "a", false, "force the advanced, worker-pool parallel mode")
	flagSet.BoolVarP(&f.silent, "silent", "s", false, "suppress progress output")
	flagSet.BoolVarP(&f.quiet, "quiet", "q", false, "lower log verbosity")
	flagSet.IntVarP(&f.workers, "workers", "w", -1, "worker count for advanced mode (default: all CPUs); 0 is invalid")
	flagSet.StringVarP(&f.configPath, "config", "c", "", "load a saved JSON configuration")
	flagSet.StringVar(&f.saveConfigPath, "save-config", "", "save the resolved configuration as JSON")
	flagSet.StringVarP(&f.traversal, "traversal", "t", "", "single-threaded traversal order: bfs|dfs (default: bfs)")
	flagSet.BoolVarP(&f.noRecursive, "no-recursive", "r", false, "do not descend into subdirectories")
	flagSet.BoolVarP(&f.followSymlinks, "follow-symlinks", "f", false, "follow symlinks during traversal")
	flagSet.StringVar(&f.minSize, "min-size", "", "minimum file size (e.g. 10kb, 5mb)")
	flagSet.StringVar(&f.maxSize, "max-size", "", "maximum file size (e.g. 10kb, 5mb)")
	flagSet.StringVar(&f.newerThan, "newer-than", "", "only files modified after this ISO date (YYYY-MM-DD)")
	flagSet.StringVar(&f.olderThan, "older-than", "", "only files modified before this ISO date (YYYY-MM-DD)")
	flagSet.BoolVar(&f.ignoreHidden, "ignore-hidden", false, "skip dot-prefixed entries")

	return cmd
}

// run resolves the final search.Config from flags (and an optional loaded
// config file), runs the search, and either prints results or hands them to
// the grep engine. It returns a non-nil error only for a fatal condition
// (spec §7); transient per-entry errors are logged to stderr and never
// propagate here.
func run(stdout, stderr io.Writer, f flags, query string) error {
	cfg, err := resolveConfig(f, query)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	logLevel := "info"
	if f.quiet {
		logLevel = "warn"
	}
	log := logger.New(stderr, logLevel)

	if cfg.Extension == "" && cfg.NameSubstring == "" && cfg.GrepPattern == "" {
		log.Warnf("no search criteria specified (no --ext/--name/--grep or bare query), behavior may be undefined")
	}

	if f.path == "" && f.configPath == "" {
		display.WarnExpensiveRoot(cfg.Root).Display(stderr)
	}

	if f.saveConfigPath != "" {
		if err := cfg.Save(f.saveConfigPath); err != nil {
			fmt.Fprintln(stderr, err)
			return err
		}
	}

	runID := uuid.NewString()
	log.Debugf("run %s: searching %s", runID, cfg.Root)

	finder, err := search.NewFinder(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	finder.Observers.OnPanic(func(recovered interface{}) {
		log.Warnf("observer panic recovered: %v", recovered)
	})
	finder.ErrorSink = func(err error) {
		if se, ok := err.(*searcherr.Error); ok && se.Kind == searcherr.KindAccess {
			log.Debugf("%v", se)
			return
		}
		log.Warnf("%v", err)
	}

	results, err := finder.Find()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	if cfg.GrepPattern == "" {
		for _, path := range results {
			fmt.Fprintln(stdout, path)
		}
		return nil
	}

	return runGrep(stdout, stderr, cfg, results, log)
}

func runGrep(stdout, stderr io.Writer, cfg search.Config, files []string, log *logger.ConsoleLogger) error {
	engine, err := grep.New(cfg.GrepPattern, cfg.GrepIgnoreCase)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	errSink := func(err error) { log.Warnf("%v", err) }

	if cfg.GrepFilesOnly {
		for _, path := range engine.FilesWithMatches(files, errSink) {
			fmt.Fprintln(stdout, path)
		}
		return nil
	}

	matches := engine.ScanAll(files, errSink)
	return grep.WriteLineMatches(stdout, matches, cfg.GrepLineNumber)
}

// resolveConfig merges flags, an optional loaded config file, and the
// positional query into a validated search.Config. Precedence is: loaded
// config supplies the base, flags override anything explicitly set, and
// the bare positional query (when no --name/--ext/--grep was given) is
// interpreted as a name-substring filter, per spec §6.
func resolveConfig(f flags, query string) (search.Config, error) {
	var cfg search.Config
	var err error
	if f.configPath != "" {
		cfg, err = search.LoadConfig(f.configPath)
		if err != nil {
			return search.Config{}, err
		}
	} else {
		cfg = search.DefaultConfig()
	}

	if f.path != "" {
		cfg.Root = f.path
	} else if cfg.Root == "" {
		cfg.Root = defaultRoot()
	}

	if f.ext != "" {
		cfg.Extension = f.ext
	}
	if f.name != "" {
		cfg.NameSubstring = f.name
	} else if query != "" && f.ext == "" && f.grepPattern == "" {
		cfg.NameSubstring = query
	}
	if f.grepPattern != "" {
		cfg.GrepPattern = f.grepPattern
	}
	cfg.GrepIgnoreCase = cfg.GrepIgnoreCase || f.ignoreCase
	cfg.GrepLineNumber = cfg.GrepLineNumber || f.lineNumber
	cfg.GrepFilesOnly = cfg.GrepFilesOnly || f.filesWithMatches
	cfg.Advanced = cfg.Advanced || f.advanced
	cfg.Silent = cfg.Silent || f.silent
	cfg.Quiet = cfg.Quiet || f.quiet
	cfg.IgnoreHidden = cfg.IgnoreHidden || f.ignoreHidden

	switch {
	case f.workers > 0:
		cfg.Workers = f.workers
	case f.workers == 0:
		return search.Config{}, searcherr.InvalidArgument("workers must be greater than zero")
	}

	if f.noRecursive {
		cfg.Recursive = false
	}
	if f.followSymlinks {
		cfg.FollowSymlinks = true
	}

	switch f.traversal {
	case "":
		// Not given: keep the loaded config's order (BreadthFirst by default).
	case "bfs":
		cfg.TraversalOrder = search.BreadthFirst
	case "dfs":
		cfg.TraversalOrder = search.DepthFirst
	default:
		return search.Config{}, searcherr.InvalidArgument("traversal must be bfs or dfs, got " + f.traversal)
	}

	if f.minSize != "" {
		cfg.MinSize, err = search.ParseHumanSize(f.minSize)
		if err != nil {
			return search.Config{}, err
		}
	}
	if f.maxSize != "" {
		cfg.MaxSize, err = search.ParseHumanSize(f.maxSize)
		if err != nil {
			return search.Config{}, err
		}
	}
	if f.newerThan != "" {
		cfg.NewerThanUnix, err = search.ParseISODate(f.newerThan, false)
		if err != nil {
			return search.Config{}, err
		}
	}
	if f.olderThan != "" {
		cfg.OlderThanUnix, err = search.ParseISODate(f.olderThan, true)
		if err != nil {
			return search.Config{}, err
		}
	}

	return cfg, nil
}

// Execute runs the root command against os.Args and returns the process
// exit code: 0 on success, 1 on any fatal error. Per spec §7, a transient,
// per-entry error during the walk never changes this.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
