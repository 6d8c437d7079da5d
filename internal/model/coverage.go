// Package model defines the data structures shared by the report pipeline.
package model

import (
	"path"
	"sort"
)

// CoverageKey identifies a source file inside a coverage report.
type CoverageKey struct {
	Package string // slash separated package, as written by JaCoCo
	File    string
}

// Path returns the report-relative path of the file ("pkg/File.kt").
// Files in the default package have no directory component.
func (k CoverageKey) Path() string {
	if k.Package == "" {
		return k.File
	}

	return path.Join(k.Package, k.File)
}

// LineHits maps a zero-based line index to a hit flag (1 covered, 0 missed).
// Lines that were not instrumented are absent.
type LineHits map[int]int

// BranchCounts holds the branch counters JaCoCo records for one line.
type BranchCounts struct {
	Covered int
	Missed  int
}

// FileCoverage is the parsed coverage of one source file.
type FileCoverage struct {
	Lines    LineHits
	Branches map[int]BranchCounts
}

// NewFileCoverage returns an empty FileCoverage ready to be filled.
func NewFileCoverage() *FileCoverage {
	return &FileCoverage{
		Lines:    LineHits{},
		Branches: map[int]BranchCounts{},
	}
}

// Coverage is the whole parsed report keyed by source file.
type Coverage map[CoverageKey]*FileCoverage

// SortedKeys returns the keys ordered by package, then file name.
func (c Coverage) SortedKeys() []CoverageKey {
	keys := make([]CoverageKey, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Package != keys[j].Package {
			return keys[i].Package < keys[j].Package
		}

		return keys[i].File < keys[j].File
	})

	return keys
}
