package sarctype

import "github.com/opencontainers/go-digest"

// Entry is a named file recovered from an archive.
//
// Data is owned by whoever holds the Entry; it does not alias the
// archive buffer.
type Entry struct {
	// Name is the path stored in the name table (e.g., "Actor/Link.bfres").
	Name string

	// Data is the file content.
	Data []byte
}

// Size returns the length of the entry content in bytes.
func (e Entry) Size() int {
	return len(e.Data)
}

// Digest returns the sha256 digest of the entry content.
func (e Entry) Digest() digest.Digest {
	return digest.FromBytes(e.Data)
}
