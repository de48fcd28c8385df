package walk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
)

// WatchOptions defines options for watching a tree after the initial search.
type WatchOptions struct {
	// Timeout ends the watch after the given duration (0 means no timeout).
	Timeout time.Duration

	// OnReady, if set, is called once the initial search is done and every
	// directory is registered with the watcher.
	OnReady func()
}

// Watch searches root like Search and then keeps reporting files matching
// pattern as they appear below root. New files go through the same
// observers as found ones, so an observer calling Cancel ends the watch.
// Watch also returns when ctx is done or the timeout expires; both count
// as a normal end and yield a nil error.
//
// Events come from the host filesystem, so the lister must present host
// paths: the default OSLister, or an AferoLister over afero.NewOsFs or a
// wrapper of it. Directories removed before they can be searched are
// skipped.
func (s *Searcher) Watch(ctx context.Context, root, pattern string, opts WatchOptions) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	run, err := s.newRun(ctx, root, pattern, false)
	if err != nil {
		return err
	}
	run.seen = make(map[string]struct{})
	root = run.args.searchPath

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	// Register before searching so nothing created meanwhile is lost;
	// run.seen drops the duplicates this can cause.
	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("error watching directory %s: %w", root, err)
	}
	if err := s.watchChildren(watcher, root); err != nil {
		s.logger.Warn(fmt.Sprintf("some directories are not watched: %v", err))
	}

	if err := s.searchDir(run); err != nil {
		return ignoreDone(err)
	}
	if run.args.cancel {
		return nil
	}

	if opts.OnReady != nil {
		opts.OnReady()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// A rename into the tree shows up as Create on the new name.
			if !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.handleCreate(run, watcher, event.Name); err != nil {
				return ignoreDone(err)
			}
			if run.args.cancel {
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error(fmt.Sprintf("watcher error: %v", err))
		}
	}
}

// handleCreate reports a new file, or registers and searches a new
// directory. Paths that disappear before they are inspected are ignored.
func (s *Searcher) handleCreate(run *walkRun, watcher *fsnotify.Watcher, path string) error {
	entry, ok, err := s.lookup(path)
	if err != nil || !ok {
		// Gone again before we got to it.
		return nil
	}

	args := run.args
	switch {
	case entry.IsDir:
		if err := watcher.Add(path); err != nil {
			s.logger.Warn(fmt.Sprintf("error watching new directory %s: %v", path, err))
		} else if err := s.watchChildren(watcher, path); err != nil {
			s.logger.Warn(fmt.Sprintf("some directories are not watched: %v", err))
		}
		args.moveTo(path)
		if err := s.searchDir(run); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Info(fmt.Sprintf("directory removed before it was searched: %s", path))
				return nil
			}
			return err
		}

	case run.matcher.Match(filepath.Base(path)):
		args.moveTo(filepath.Dir(path))
		s.dispatch(run, path)
	}
	return nil
}

// lookup describes path through the lister when it can, and through the
// host filesystem otherwise.
func (s *Searcher) lookup(path string) (Entry, bool, error) {
	if looker, ok := s.lister.(entryLooker); ok {
		return looker.Lookup(path)
	}
	return NewOSLister().Lookup(path)
}

// watchChildren registers every directory below dir. Directories that
// cannot be listed are left to the search to report.
func (s *Searcher) watchChildren(watcher *fsnotify.Watcher, dir string) error {
	entries, err := s.lister.ReadDir(dir)
	if err != nil {
		if errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrPathTooLong) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("listing %q: %w", dir, err)
	}

	var result error
	for _, entry := range entries {
		if !entry.IsDir {
			continue
		}
		sub := filepath.Join(dir, entry.Name)
		if err := watcher.Add(sub); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			result = multierror.Append(result, fmt.Errorf("watching %q: %w", sub, err))
			continue
		}
		if err := s.watchChildren(watcher, sub); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

// ignoreDone turns the end of the watch context into a clean return.
func ignoreDone(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
