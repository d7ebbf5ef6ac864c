// Package types contains shared result types used across renum's engines
// and the CLI layer.
package types

// Report summarizes a single analyze run over a directory tree.
type Report struct {
	// FileCount is the number of non-directory entries with a non-empty
	// extension that were seen within the depth bound.
	FileCount int
	// Matched is the number of counted files whose extension is in the
	// active set (whitelist when non-empty, blacklist otherwise).
	Matched int
	// Types maps each extension to the number of files carrying it.
	Types map[string]int
	// ListName names the active set: "whitelist" or "blacklist".
	ListName string
}

// CopyRecord describes one file copied by a rename run.
type CopyRecord struct {
	Source string
	Dest   string
	// Number is the sequence value consumed by this copy.
	Number int
	// Hash is the xxh3-128 digest of the copied bytes, hex encoded.
	// Empty unless verification was enabled.
	Hash string
}
