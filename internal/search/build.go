package search

import (
	"github.com/harrison/sift/internal/observer"
	"github.com/harrison/sift/internal/predicate"
	"github.com/harrison/sift/internal/searcherr"
	"github.com/harrison/sift/internal/traversal"
)

// BuildPredicates assembles the predicate registry a Config implies: one
// predicate per active filter field, registered in a fixed, documented
// order (extension, name, size, date, regex) so results are deterministic
// regardless of which flags a particular invocation set.
func BuildPredicates(cfg Config) (*predicate.Registry, error) {
	reg := predicate.NewRegistry()

	if cfg.Extension != "" {
		reg.Register("extension", predicate.NewExtension(cfg.Extension))
	}
	if cfg.NameSubstring != "" {
		reg.Register("name", predicate.NewName(cfg.NameSubstring, cfg.CaseSensitive))
	}
	if cfg.MinSize > 0 || cfg.MaxSize > 0 {
		reg.Register("size", predicate.NewSizeRange(cfg.MinSize, cfg.MaxSize))
	}
	if cfg.NewerThanUnix != 0 || cfg.OlderThanUnix != 0 {
		reg.Register("date", predicate.NewDateRange(cfg.NewerThanUnix, cfg.OlderThanUnix))
	}
	if cfg.RegexInclude != "" || cfg.RegexExclude != "" {
		re, err := predicate.NewRegexp(cfg.RegexInclude, cfg.RegexExclude)
		if err != nil {
			return nil, searcherr.RegexCompile(cfg.RegexInclude+cfg.RegexExclude, err)
		}
		reg.Register("regex", re)
	}

	return reg, nil
}

// BuildTraversalPolicy assembles the traversal policy a Config implies:
// hidden-entry skipping is always present (as a no-op when IgnoreHidden is
// false), and a regex path gate is added only when configured.
func BuildTraversalPolicy(cfg Config) (traversal.Policy, error) {
	policies := []traversal.Policy{traversal.NewDefault(cfg.IgnoreHidden)}

	if cfg.RegexInclude != "" || cfg.RegexExclude != "" {
		re, err := traversal.NewRegexp(cfg.RegexInclude, cfg.RegexExclude)
		if err != nil {
			return nil, searcherr.RegexCompile(cfg.RegexInclude+cfg.RegexExclude, err)
		}
		policies = append(policies, re)
	}

	return traversal.NewComposite(policies...), nil
}

// BuildObservers assembles the observer registry a Config implies: a
// Tracking observer always runs (it's how Finder.Find collects results),
// and a Progress observer is added unless the config sets Silent or Quiet.
func BuildObservers(cfg Config) (*observer.Registry, *observer.Tracking) {
	reg := observer.NewRegistry()

	tracking := observer.NewTracking()
	reg.Register(tracking)

	if !cfg.Silent && !cfg.Quiet {
		reg.Register(observer.NewProgress(nil))
	}

	return reg, tracking
}
