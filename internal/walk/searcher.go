// Package walk finds files by name in a directory tree and reports them to
// registered observers.
//
// The walk is synchronous and depth-first. All matching files of a
// directory are reported before any of its subdirectories is entered, and
// observers may stop the walk at any match by calling SearchArgs.Cancel.
package walk

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// MatchObserver is called once for every matching file.
type MatchObserver func(args *SearchArgs)

// PostMatchObserver is called after all match observers of a file have run.
// It is the natural place to decide whether to cancel.
type PostMatchObserver func(args *SearchArgs)

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the diagnostic sink. The default discards everything.
func WithLogger(logger Logger) Option {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLister replaces the host filesystem lister.
func WithLister(lister DirLister) Option {
	return func(s *Searcher) {
		if lister != nil {
			s.lister = lister
		}
	}
}

// WithSortedEntries makes the walker visit entries in name order instead of
// filesystem order.
func WithSortedEntries() Option {
	return func(s *Searcher) {
		s.sorted = true
	}
}

// Searcher walks directory trees. Observers are registered once and apply
// to every subsequent Search. A Searcher is not safe for concurrent use.
type Searcher struct {
	matchObservers     []MatchObserver
	postMatchObservers []PostMatchObserver

	lister DirLister
	logger Logger
	sorted bool
}

// NewSearcher creates a Searcher reading the host filesystem.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		lister: NewOSLister(),
		logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterMatchObserver appends fn to the match observers.
func (s *Searcher) RegisterMatchObserver(fn MatchObserver) {
	s.matchObservers = append(s.matchObservers, fn)
}

// RegisterPostMatchObserver appends fn to the post-match observers.
func (s *Searcher) RegisterPostMatchObserver(fn PostMatchObserver) {
	s.postMatchObservers = append(s.postMatchObservers, fn)
}

// Search walks root and reports every file whose name matches pattern.
//
// With cancel set the walk stops at the first checkpoint it reaches: after
// the first match, or after the first subdirectory returns when the root
// itself has none.
//
// Unreadable directories and over-long paths are logged and skipped. Any
// other listing failure ends the walk and is returned.
func (s *Searcher) Search(root, pattern string, cancel bool) error {
	return s.SearchContext(context.Background(), root, pattern, cancel)
}

// SearchContext is Search with a context. The context is checked at the
// same points as the cancel flag.
func (s *Searcher) SearchContext(ctx context.Context, root, pattern string, cancel bool) error {
	run, err := s.newRun(ctx, root, pattern, cancel)
	if err != nil {
		return err
	}
	return s.searchDir(run)
}

// walkRun is the per-call state threaded through the recursion.
type walkRun struct {
	ctx     context.Context
	args    *SearchArgs
	matcher nameMatcher

	// seen records reported paths when the same file may be found twice
	// (a watch racing its initial search). Nil for plain searches.
	seen map[string]struct{}
}

func (s *Searcher) newRun(ctx context.Context, root, pattern string, cancel bool) (*walkRun, error) {
	matcher, err := newNameMatcher(pattern)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", root, err)
	}

	return &walkRun{
		ctx:     ctx,
		args:    newSearchArgs(abs, pattern, cancel),
		matcher: matcher,
	}, nil
}

// searchDir handles run.args.SearchPath and everything below it.
func (s *Searcher) searchDir(run *walkRun) error {
	args := run.args
	dir := args.searchPath

	entries, err := s.lister.ReadDir(dir)
	switch {
	case err == nil:
	case errors.Is(err, ErrAccessDenied):
		s.logger.Warn(fmt.Sprintf("skipping directory with restricted access: %s", dir))
		return nil
	case errors.Is(err, ErrPathTooLong):
		s.logger.Error(fmt.Sprintf("skipping directory due to excessively long path: %s", dir))
		return nil
	default:
		return fmt.Errorf("listing %q: %w", dir, err)
	}

	if s.sorted {
		slices.SortFunc(entries, func(a, b Entry) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	for _, entry := range entries {
		if entry.IsDir || !run.matcher.Match(entry.Name) {
			continue
		}
		s.dispatch(run, filepath.Join(dir, entry.Name))
		if args.cancel {
			return nil
		}
		if err := run.ctx.Err(); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if !entry.IsDir {
			continue
		}
		args.moveTo(filepath.Join(dir, entry.Name))
		if err := s.searchDir(run); err != nil {
			return err
		}
		if args.cancel {
			return nil
		}
		if err := run.ctx.Err(); err != nil {
			return err
		}
		args.moveTo(dir)
	}
	return nil
}

// dispatch reports one match to every observer, match observers first.
func (s *Searcher) dispatch(run *walkRun, path string) {
	if run.seen != nil {
		if _, ok := run.seen[path]; ok {
			return
		}
		run.seen[path] = struct{}{}
	}

	args := run.args
	args.matchedFilePath = path
	for _, fn := range s.matchObservers {
		fn(args)
	}
	for _, fn := range s.postMatchObservers {
		fn(args)
	}
}
