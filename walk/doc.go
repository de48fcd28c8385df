// Package walk finds files by name in a directory tree.
//
// A Searcher walks depth-first, reporting every matching file of a
// directory before it enters any subdirectory. Observers registered on the
// Searcher receive each match and may stop the walk:
//
//	s := walk.NewSearcher(walk.WithSortedEntries())
//	s.RegisterMatchObserver(func(args *walk.SearchArgs) {
//		fmt.Println(args.MatchedFilePath())
//	})
//	s.RegisterPostMatchObserver(func(args *walk.SearchArgs) {
//		args.Cancel() // stop after the first match
//	})
//	err := s.Search("/var/log", "*.log", false)
//
// Directories that cannot be read because of permissions or path length
// are logged and skipped. Any other listing failure is returned.
//
// Watch Functionality
//
// Watch runs the same search and then keeps reporting files that appear
// later, until the context ends or an observer cancels:
//
//	err := s.Watch(ctx, "/var/log", "*.log", walk.WatchOptions{Timeout: time.Hour})
//
// Output helpers
//
// FormatObserver and ExecObserver render matches with a template where {}
// is the full path, {base} the file name and {dir} the parent directory:
//
//	s.RegisterMatchObserver(walk.FormatObserver("{base} in {dir}", os.Stdout))
//	s.RegisterMatchObserver(walk.ExecObserver(ctx, "wc -l {}", os.Stdout, nil))
package walk
