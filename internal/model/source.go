package model

// Path represents a file system path.
type Path string

// SourceRoot is a directory searched when resolving report keys to files.
// Package, when set, overrides root package detection for the directory:
// an empty string with Explicit set means the directory mirrors the full
// package layout.
type SourceRoot struct {
	Dir      Path
	Package  string
	Explicit bool
}

// RootMapping describes how report paths are mapped onto one source root.
type RootMapping struct {
	Dir     Path
	Mapping string
}

// SourceReport is the per-file coverage entry sent to Coveralls.
type SourceReport struct {
	Name         string `json:"name"`
	SourceDigest string `json:"source_digest"`
	Coverage     []*int `json:"coverage"`
	Branches     []int  `json:"branches,omitempty"`
}

// RelevantLines returns how many lines were instrumented.
func (r SourceReport) RelevantLines() int {
	n := 0

	for _, hit := range r.Coverage {
		if hit != nil {
			n++
		}
	}

	return n
}

// CoveredLines returns how many instrumented lines were hit.
func (r SourceReport) CoveredLines() int {
	n := 0

	for _, hit := range r.Coverage {
		if hit != nil && *hit > 0 {
			n++
		}
	}

	return n
}
