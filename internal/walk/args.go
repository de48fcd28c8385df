package walk

import "path/filepath"

// SearchArgs is the state of one Search call. The same value is handed to
// every observer and threaded through the whole recursive descent, so
// observers see the walker's position and can stop it.
type SearchArgs struct {
	searchPath      string // Directory currently being scanned
	previousPath    string // Directory searchPath was entered from
	pattern         string // Glob applied to file names
	matchedFilePath string // Full path of the most recent match
	cancel          bool   // Once true, the walk stops at the next checkpoint
}

func newSearchArgs(root, pattern string, cancel bool) *SearchArgs {
	return &SearchArgs{
		searchPath:   root,
		previousPath: root,
		pattern:      pattern,
		cancel:       cancel,
	}
}

// SearchPath returns the directory currently being scanned.
func (a *SearchArgs) SearchPath() string { return a.searchPath }

// PreviousPath returns the directory the current one was entered from.
func (a *SearchArgs) PreviousPath() string { return a.previousPath }

// Pattern returns the glob pattern of the search.
func (a *SearchArgs) Pattern() string { return a.pattern }

// MatchedFilePath returns the full path of the most recent match. It is
// cleared whenever the walk changes directory.
func (a *SearchArgs) MatchedFilePath() string { return a.matchedFilePath }

// FileName returns the base name of the file being reported.
func (a *SearchArgs) FileName() string {
	if a.matchedFilePath == "" {
		return ""
	}
	return filepath.Base(a.matchedFilePath)
}

// Cancel asks the walker to stop. It cannot be undone.
func (a *SearchArgs) Cancel() { a.cancel = true }

// Cancelled reports whether the walk has been asked to stop.
func (a *SearchArgs) Cancelled() bool { return a.cancel }

// moveTo records a directory transition.
func (a *SearchArgs) moveTo(dir string) {
	a.previousPath = a.searchPath
	a.searchPath = dir
	a.matchedFilePath = ""
}
