package naming

import (
	"path/filepath"
	"strings"
)

// Extension returns the extension of the final path component without its
// dot, preserving case. The name is split on its last dot only when that dot
// is not the first character, so ".gitignore" has no extension. A trailing
// dot ("notes.") yields the empty extension.
func Extension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}

// TargetName builds the content-addressed filename for path:
//
//	<digest>.<ext>   when path has an extension
//	<digest>         otherwise (no trailing separator)
//
// The result depends only on digest and the extension, never on the rest
// of the original name or its directory.
func TargetName(path, digest string) string {
	if ext := Extension(path); ext != "" {
		return digest + "." + ext
	}
	return digest
}

// TargetPath places TargetName(path, digest) next to path, so a rename is
// always a same-directory move.
func TargetPath(path, digest string) string {
	return filepath.Join(filepath.Dir(path), TargetName(path, digest))
}
