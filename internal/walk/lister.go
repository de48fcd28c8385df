package walk

import (
	"os"
	"path/filepath"

	"github.com/karrick/godirwalk"
	"github.com/spf13/afero"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name  string // Base name
	IsDir bool   // Whether the walker may descend into it
}

// DirLister lists the immediate children of a directory. Failures that
// mean "permission denied" or "path too long" must satisfy errors.Is with
// ErrAccessDenied or ErrPathTooLong (or the fs.ErrPermission /
// syscall.ENAMETOOLONG causes they are classified from).
type DirLister interface {
	ReadDir(dir string) ([]Entry, error)
}

// entryLooker is implemented by listers that can describe a single path.
// Watch uses it to inspect paths reported by filesystem events.
type entryLooker interface {
	// Lookup returns the entry for path. ok is false for entries the
	// walker ignores (symlinks to directories).
	Lookup(path string) (entry Entry, ok bool, err error)
}

// OSLister reads directories from the host filesystem with godirwalk.
// Entries come back in the order the filesystem yields them.
type OSLister struct{}

// NewOSLister returns a lister backed by the host filesystem.
func NewOSLister() *OSLister {
	return &OSLister{}
}

// ReadDir implements DirLister.
func (l *OSLister) ReadDir(dir string) ([]Entry, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, classifyListError(dir, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if de.IsSymlink() && symlinkToDir(func() (os.FileInfo, error) {
			return os.Stat(filepath.Join(dir, de.Name()))
		}) {
			continue
		}
		entries = append(entries, Entry{Name: de.Name(), IsDir: de.IsDir()})
	}
	return entries, nil
}

// Lookup implements entryLooker.
func (l *OSLister) Lookup(path string) (Entry, bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, false, err
	}
	return toEntry(info, func() (os.FileInfo, error) { return os.Stat(path) })
}

// AferoLister reads directories through an afero filesystem.
type AferoLister struct {
	Fs afero.Fs
}

// NewAferoLister returns a lister backed by fsys.
func NewAferoLister(fsys afero.Fs) *AferoLister {
	return &AferoLister{Fs: fsys}
}

// ReadDir implements DirLister.
func (l *AferoLister) ReadDir(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(l.Fs, dir)
	if err != nil {
		return nil, classifyListError(dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if info.Mode()&os.ModeSymlink != 0 && symlinkToDir(func() (os.FileInfo, error) {
			return l.Fs.Stat(filepath.Join(dir, info.Name()))
		}) {
			continue
		}
		entries = append(entries, Entry{Name: info.Name(), IsDir: info.IsDir()})
	}
	return entries, nil
}

// Lookup implements entryLooker. Filesystems without Lstat support
// resolve symlinks.
func (l *AferoLister) Lookup(path string) (Entry, bool, error) {
	var (
		info os.FileInfo
		err  error
	)
	if lstater, ok := l.Fs.(afero.Lstater); ok {
		info, _, err = lstater.LstatIfPossible(path)
	} else {
		info, err = l.Fs.Stat(path)
	}
	if err != nil {
		return Entry{}, false, err
	}
	return toEntry(info, func() (os.FileInfo, error) { return l.Fs.Stat(path) })
}

func toEntry(info os.FileInfo, stat func() (os.FileInfo, error)) (Entry, bool, error) {
	if info.Mode()&os.ModeSymlink != 0 && symlinkToDir(stat) {
		return Entry{}, false, nil
	}
	return Entry{Name: info.Name(), IsDir: info.IsDir()}, true, nil
}

// symlinkToDir reports whether a symlink resolves to a directory. Those are
// never followed; dangling links count as files.
func symlinkToDir(stat func() (os.FileInfo, error)) bool {
	info, err := stat()
	return err == nil && info.IsDir()
}
