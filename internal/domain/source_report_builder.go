package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"jacov.dev/pkg/jacov/internal/adapter"
	m "jacov.dev/pkg/jacov/internal/model"
)

// BuildOptions tunes how source reports are built.
type BuildOptions struct {
	// ProjectRoot is the directory report names are relative to.
	ProjectRoot m.Path
	// Branches adds Coveralls branch data to every report.
	Branches bool
	// Jobs bounds how many files are read at once. Values below 1 mean 1.
	Jobs int
}

// SourceReportBuilder turns parsed coverage into per-file Coveralls reports.
type SourceReportBuilder struct {
	fs     adapter.SourceFSAdapter
	finder *FileFinder
	opts   BuildOptions
}

// NewSourceReportBuilder creates a builder resolving files with finder.
func NewSourceReportBuilder(fs adapter.SourceFSAdapter, finder *FileFinder, opts BuildOptions) *SourceReportBuilder {
	return &SourceReportBuilder{fs: fs, finder: finder, opts: opts}
}

// Build returns one report per resolvable file in coverage, ordered by
// package and file name. Files that cannot be resolved or read are skipped.
func (b *SourceReportBuilder) Build(ctx context.Context, coverage m.Coverage) ([]m.SourceReport, error) {
	if b.finder == nil || len(b.finder.roots) == 0 {
		return []m.SourceReport{}, nil
	}

	keys := coverage.SortedKeys()
	slots := make([]*m.SourceReport, len(keys))

	jobs := b.opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var group errgroup.Group
	group.SetLimit(jobs)

	for i, key := range keys {
		index, currentKey := i, key

		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			report, err := b.buildOne(ctx, currentKey, coverage[currentKey])
			if err != nil {
				slog.Info("skipping source file", "key", currentKey.Path(), "error", err)
				return nil
			}

			slots[index] = report

			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]m.SourceReport, 0, len(slots))

	for _, report := range slots {
		if report != nil {
			reports = append(reports, *report)
		}
	}

	return reports, nil
}

func (b *SourceReportBuilder) buildOne(ctx context.Context, key m.CoverageKey, fc *m.FileCoverage) (*m.SourceReport, error) {
	path, ok := b.finder.Find(ctx, key.Path())
	if !ok {
		return nil, fmt.Errorf("no source file for %s", key.Path())
	}

	content, err := b.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	digest, err := b.fs.HashFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("hash source: %w", err)
	}

	name, err := b.fs.RelPath(ctx, b.opts.ProjectRoot, path)
	if err != nil {
		return nil, fmt.Errorf("relative name: %w", err)
	}

	lineCount := countLines(content)

	report := &m.SourceReport{
		Name:         filepath.ToSlash(string(name)),
		SourceDigest: digest,
		Coverage:     coverageVector(key, fc, lineCount),
	}

	if b.opts.Branches && fc != nil {
		report.Branches = branchVector(fc, lineCount)
	}

	return report, nil
}

// countLines counts newline-terminated lines plus a trailing unterminated one.
func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}

	n := bytes.Count(content, []byte{'\n'})
	if content[len(content)-1] != '\n' {
		n++
	}

	return n
}

func coverageVector(key m.CoverageKey, fc *m.FileCoverage, lineCount int) []*int {
	vector := make([]*int, lineCount)

	if fc == nil {
		return vector
	}

	for index, hit := range fc.Lines {
		if index < 0 || index >= lineCount {
			slog.Debug("line out of range", "key", key.Path(), "line", index+1, "lines", lineCount)
			continue
		}

		flag := hit
		vector[index] = &flag
	}

	return vector
}

// branchVector renders branch counters in the flat Coveralls layout
// [line, block, branch, hits, ...].
func branchVector(fc *m.FileCoverage, lineCount int) []int {
	indexes := make([]int, 0, len(fc.Branches))
	for index := range fc.Branches {
		if index >= 0 && index < lineCount {
			indexes = append(indexes, index)
		}
	}

	sort.Ints(indexes)

	var branches []int

	for _, index := range indexes {
		counts := fc.Branches[index]
		branch := 0

		for i := 0; i < counts.Covered; i++ {
			branches = append(branches, index+1, 0, branch, 1)
			branch++
		}

		for i := 0; i < counts.Missed; i++ {
			branches = append(branches, index+1, 0, branch, 0)
			branch++
		}
	}

	return branches
}
