// Package naming derives content-addressed target names and arbitrates
// which rename may claim a given target.
//
// Functions:
//   - Extension(name) → extension without the dot, "" for none.
//     A leading dot marks a hidden file, not an extension.
//   - TargetName(path, digest) → "<DIGEST>.<ext>" or "<DIGEST>".
//   - TargetPath(path, digest) → sibling path in the same directory.
//
// Types:
//   - Guard: run-wide claimed-name set combined with an on-disk existence
//     check under a single mutex (see collision.go).
package naming
