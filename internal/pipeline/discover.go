package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/hashname/internal/rename"
)

// ExpandOptions controls how an input string becomes a list of files.
type ExpandOptions struct {
	ExpandGlobs    bool // Treat inputs as glob patterns (default); otherwise literal paths.
	FollowSymlinks bool // Recurse into symlinked directories, guarded by a visited set.
}

// Expansion is the work list produced from one input.
type Expansion struct {
	Input        string
	Files        []string // Depth-first, lexical order within each directory.
	Errors       []error  // *rename.PatternError, *rename.InputError, *rename.DirectoryReadError.
	SkippedLinks []string // Symlinked directories not followed.
}

// Expand resolves one input into files. A pattern that matches nothing is
// not an error; an invalid pattern is. Directories are walked recursively
// with an explicit stack, and a directory that cannot be listed is recorded
// without stopping the walk of its siblings.
func Expand(fsys afero.Fs, input string, opts ExpandOptions) Expansion {
	exp := Expansion{Input: input}

	roots, err := resolveRoots(fsys, input, opts.ExpandGlobs)
	if err != nil {
		exp.Errors = append(exp.Errors, err)
		return exp
	}

	w := walker{fsys: fsys, opts: opts, visited: make(map[string]bool), exp: &exp}
	for _, root := range roots {
		w.visitRoot(root)
	}
	return exp
}

// resolveRoots turns input into the paths it names: glob matches, or the
// literal path when expansion is disabled.
func resolveRoots(fsys afero.Fs, input string, expandGlobs bool) ([]string, error) {
	if !expandGlobs {
		if _, err := lstat(fsys, input); err != nil {
			return nil, &rename.InputError{Input: input, Err: err}
		}
		return []string{input}, nil
	}

	// A trailing slash keeps only directory matches, as in the shell.
	pattern := input
	dirsOnly := len(input) > 1 && strings.HasSuffix(input, "/")
	if dirsOnly {
		pattern = strings.TrimRight(input, "/")
		if pattern == "" {
			pattern = "/"
		}
	}

	// afero.Glob only reports a bad pattern when it gets as far as matching a
	// directory entry; check the whole pattern up front.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, &rename.PatternError{Pattern: input, Err: err}
	}
	matches, err := afero.Glob(fsys, pattern)
	if err != nil {
		return nil, &rename.PatternError{Pattern: input, Err: err}
	}
	if dirsOnly {
		dirs := matches[:0]
		for _, m := range matches {
			if fi, err := fsys.Stat(m); err == nil && fi.IsDir() {
				dirs = append(dirs, m)
			}
		}
		matches = dirs
	}
	sort.Strings(matches)
	return matches, nil
}

type walker struct {
	fsys    afero.Fs
	opts    ExpandOptions
	visited map[string]bool // canonical directory path → walked
	exp     *Expansion
}

// entryKind says what to do with a path found during expansion.
type entryKind int

const (
	kindFile        entryKind = iota // Work item (regular, special or symlink to file).
	kindDir                          // Descend.
	kindSkippedLink                  // Symlink to a directory, not followed.
)

// visitRoot classifies one top-level path and walks it if it is a directory.
func (w *walker) visitRoot(path string) {
	fi, err := lstat(w.fsys, path)
	if err != nil {
		// Vanished between glob and lstat; the processor reports it.
		w.exp.Files = append(w.exp.Files, path)
		return
	}
	w.visit(path, fi, nil)
}

// visit routes path by kind: files are appended to the work list,
// directories to subdirs, unfollowed directory links to SkippedLinks.
func (w *walker) visit(path string, fi os.FileInfo, subdirs *[]string) {
	switch w.classify(path, fi) {
	case kindDir:
		if subdirs == nil {
			w.walk(path)
			return
		}
		*subdirs = append(*subdirs, path)
	case kindSkippedLink:
		w.exp.SkippedLinks = append(w.exp.SkippedLinks, path)
	default:
		w.exp.Files = append(w.exp.Files, path)
	}
}

// classify decides how to treat path given its Lstat info. Symlinks to
// directories are descended into only when following is enabled; dangling
// links and links to files are files.
func (w *walker) classify(path string, fi os.FileInfo) entryKind {
	if fi.IsDir() {
		return kindDir
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return kindFile
	}
	target, err := w.fsys.Stat(path)
	if err != nil || !target.IsDir() {
		return kindFile
	}
	if !w.opts.FollowSymlinks {
		return kindSkippedLink
	}
	return kindDir
}

// walk visits every file below root depth-first. Each directory is listed
// at most once per expansion, keyed by its canonical path, which breaks
// symlink cycles when following is enabled.
func (w *walker) walk(root string) {
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := canonical(w.fsys, dir)
		if w.visited[key] {
			continue
		}
		w.visited[key] = true

		entries, err := afero.ReadDir(w.fsys, dir)
		if err != nil {
			w.exp.Errors = append(w.exp.Errors, &rename.DirectoryReadError{Dir: dir, Err: err})
			continue
		}

		var subdirs []string
		for _, fi := range entries {
			w.visit(filepath.Join(dir, fi.Name()), fi, &subdirs)
		}
		// Push in reverse so the lexically first subdirectory is walked next.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
}

// lstat uses Lstat where the filesystem supports it so symlinks are seen as
// links, falling back to Stat.
func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		fi, _, err := l.LstatIfPossible(path)
		return fi, err
	}
	return fsys.Stat(path)
}

// fileKey identifies the file behind path: a symlink and its target, or one
// file reached through two directory aliases, share a key.
func fileKey(fsys afero.Fs, path string) string {
	if _, ok := fsys.(*afero.OsFs); ok {
		if real, err := filepath.EvalSymlinks(path); err == nil {
			if abs, err := filepath.Abs(real); err == nil {
				return abs
			}
		}
	}
	return filepath.Join(canonical(fsys, filepath.Dir(path)), filepath.Base(path))
}

func isSymlink(fsys afero.Fs, path string) bool {
	fi, err := lstat(fsys, path)
	return err == nil && fi.Mode()&os.ModeSymlink != 0
}

// canonical returns an absolute, symlink-resolved form of path for visited
// checks. Only the OS filesystem has symlinks to resolve.
func canonical(fsys afero.Fs, path string) string {
	if _, ok := fsys.(*afero.OsFs); ok {
		if real, err := filepath.EvalSymlinks(path); err == nil {
			path = real
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
