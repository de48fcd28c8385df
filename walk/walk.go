package walk

import (
	"context"
	"io"

	internal "github.com/TFMV/filewalker/internal/walk"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Re-export all the types from the internal package
type (
	// Searcher walks directory trees and reports matching files to observers.
	Searcher = internal.Searcher

	// SearchArgs is the state shared with observers during a search.
	SearchArgs = internal.SearchArgs

	// MatchObserver is called once for every matching file.
	MatchObserver = internal.MatchObserver

	// PostMatchObserver runs after all match observers of a file.
	PostMatchObserver = internal.PostMatchObserver

	// Option configures a Searcher.
	Option = internal.Option

	// Logger receives diagnostics about skipped directories.
	Logger = internal.Logger

	// NopLogger discards everything.
	NopLogger = internal.NopLogger

	// LogLevel defines the verbosity of logging.
	LogLevel = internal.LogLevel

	// Entry is one directory entry as seen by a DirLister.
	Entry = internal.Entry

	// DirLister lists the immediate children of a directory.
	DirLister = internal.DirLister

	// OSLister lists directories on the host filesystem.
	OSLister = internal.OSLister

	// AferoLister lists directories on an afero filesystem.
	AferoLister = internal.AferoLister

	// WatchOptions configures Searcher.Watch.
	WatchOptions = internal.WatchOptions
)

// Log levels
const (
	LogLevelError = internal.LogLevelError
	LogLevelWarn  = internal.LogLevelWarn
	LogLevelInfo  = internal.LogLevelInfo
	LogLevelDebug = internal.LogLevelDebug
)

// Errors reported by listers and searches.
var (
	ErrAccessDenied   = internal.ErrAccessDenied
	ErrPathTooLong    = internal.ErrPathTooLong
	ErrInvalidPattern = internal.ErrInvalidPattern
)

// NewSearcher creates a Searcher reading the host filesystem unless
// WithLister says otherwise.
func NewSearcher(opts ...Option) *Searcher {
	return internal.NewSearcher(opts...)
}

// WithLogger sets the diagnostic sink.
func WithLogger(logger Logger) Option {
	return internal.WithLogger(logger)
}

// WithLister replaces the host filesystem lister.
func WithLister(lister DirLister) Option {
	return internal.WithLister(lister)
}

// WithSortedEntries makes the walker visit entries in name order.
func WithSortedEntries() Option {
	return internal.WithSortedEntries()
}

// NewLogger creates a console logger at the given level.
func NewLogger(level LogLevel) Logger {
	return internal.NewLogger(level)
}

// CreateLogger creates a zap logger at the given level. Callers should
// Sync it before exiting.
func CreateLogger(level LogLevel) *zap.Logger {
	return internal.CreateLogger(level)
}

// NewZapLogger adapts an existing zap logger.
func NewZapLogger(logger *zap.Logger) Logger {
	return internal.NewZapLogger(logger)
}

// ParseLogLevel maps verbose and silent switches onto a LogLevel.
func ParseLogLevel(verbose, silent bool) LogLevel {
	return internal.ParseLogLevel(verbose, silent)
}

// NewOSLister creates a lister for the host filesystem.
func NewOSLister() *OSLister {
	return internal.NewOSLister()
}

// NewAferoLister creates a lister backed by fsys.
func NewAferoLister(fsys afero.Fs) *AferoLister {
	return internal.NewAferoLister(fsys)
}

// FormatObserver writes each match to w using template.
func FormatObserver(template string, w io.Writer) MatchObserver {
	return internal.FormatObserver(template, w)
}

// ExecObserver runs a shell command for each match.
func ExecObserver(ctx context.Context, template string, w io.Writer, logger Logger) MatchObserver {
	return internal.ExecObserver(ctx, template, w, logger)
}
