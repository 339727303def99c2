// Package hashing computes content digests of whole files and renders them
// as filename-safe text.
//
// Types:
//   - Algorithm (sha256, blake3, xxh3) selects the digest function.
//   - Digest is the raw digest bytes; Format renders it as uppercase hex
//     or unpadded uppercase Base32.
//   - Computer reads a file through an afero.Fs and returns its Digest.
//
// Digests from different algorithms are never compared: an Algorithm is
// fixed for the duration of a run.
package hashing
