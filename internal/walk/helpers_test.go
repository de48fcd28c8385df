package walk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// createTree creates files (and directories, for entries ending in "/")
// below root on the host filesystem.
func createTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("Failed to create directory: %v", err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(full, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
}

// memTree builds the same kind of tree in memory.
func memTree(t *testing.T, root string, paths ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create root: %v", err)
	}
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := fsys.MkdirAll(full, 0755); err != nil {
				t.Fatalf("Failed to create directory: %v", err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := afero.WriteFile(fsys, full, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
	return fsys
}

// failingFs makes Open fail with a fixed error for selected paths.
type failingFs struct {
	afero.Fs
	failures map[string]error
}

func (f *failingFs) Open(name string) (afero.File, error) {
	if err, ok := f.failures[filepath.Clean(name)]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return f.Fs.Open(name)
}

// recordingLister remembers every directory it was asked to list.
type recordingLister struct {
	DirLister
	listed []string
}

func (r *recordingLister) ReadDir(dir string) ([]Entry, error) {
	r.listed = append(r.listed, dir)
	return r.DirLister.ReadDir(dir)
}

// observedLogger returns a walker sink whose entries can be inspected.
func observedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

// collectMatches registers a match observer appending every full path.
func collectMatches(s *Searcher) *[]string {
	var found []string
	s.RegisterMatchObserver(func(args *SearchArgs) {
		found = append(found, args.MatchedFilePath())
	})
	return &found
}
