// Package domain implements the coverage report pipeline: resolving report
// entries to source files, building per-file reports and submitting them.
package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"jacov.dev/pkg/jacov/internal/adapter"
	"jacov.dev/pkg/jacov/internal/controller"
	m "jacov.dev/pkg/jacov/internal/model"
)

const emptySourceSet = "source file set empty"

// SourceArgs selects the report and the source roots it is resolved against.
type SourceArgs struct {
	ReportPath  m.Path
	ProjectRoot m.Path
	SourceRoots []m.SourceRoot
	Branches    bool
	Jobs        int
}

// ReportArgs contains the arguments for uploading a coverage report.
type ReportArgs struct {
	SourceArgs
	Endpoint string
	DryRun   bool
}

// ListArgs contains the arguments for listing per-file coverage.
type ListArgs struct {
	SourceArgs
}

// Workflow defines the report pipeline driven by the CLI.
type Workflow interface {
	Report(ctx context.Context, args ReportArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportReader
	adapter.GitAdapter
	adapter.CoverallsClient
	controller.UI
	env adapter.EnvLookup
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportReader adapter.ReportReader,
	gitAdapter adapter.GitAdapter,
	coverallsClient adapter.CoverallsClient,
	ui controller.UI,
	env adapter.EnvLookup,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportReader:    reportReader,
		GitAdapter:      gitAdapter,
		CoverallsClient: coverallsClient,
		UI:              ui,
		env:             env,
	}
}

// Report builds the Coveralls job for args and uploads it, or prints it when
// DryRun is set. An empty source set is skipped without error.
func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	reports, err := w.sourceReports(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		slog.Info("source file set empty, skipping")
		w.DisplaySkipped(ctx, emptySourceSet)

		return nil
	}

	if err := w.DisplaySourceReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	slog.Info("retrieving ci service info")
	service := NewServiceInfoParser(w.env).Parse()

	options, err := NewOptionsParser(w.env).Parse()
	if err != nil {
		slog.Error("Failed to read coveralls options", "error", err)
		return err
	}

	slog.Info("retrieving git info")

	git, err := w.Info(ctx, args.ProjectRoot)
	if err != nil {
		slog.Info("git info unavailable", "dir", args.ProjectRoot, "error", err)
		git = nil
	}

	req := m.NewRequest(options, service, git, reports)

	if args.DryRun {
		payload, err := json.MarshalIndent(req, "", "  ")
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}

		return w.DisplayPayload(ctx, payload)
	}

	if err := w.Send(ctx, args.Endpoint, req); err != nil {
		slog.Error("Failed to upload coverage", "endpoint", args.Endpoint, "error", err)
		return fmt.Errorf("upload coverage: %w", err)
	}

	w.DisplayUploadResult(ctx, args.Endpoint, len(reports))

	return nil
}

// List prints the per-file coverage table without uploading anything.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	reports, err := w.sourceReports(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		w.DisplaySkipped(ctx, emptySourceSet)
		return nil
	}

	if err := w.DisplaySourceReports(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) sourceReports(ctx context.Context, args SourceArgs) ([]m.SourceReport, error) {
	if len(args.SourceRoots) == 0 {
		return []m.SourceReport{}, nil
	}

	slog.Info("parsing source files", "report", args.ReportPath)

	coverage, err := w.Read(ctx, args.ReportPath)
	if err != nil {
		return nil, fmt.Errorf("read coverage report: %w", err)
	}

	finder := NewFileFinder(ctx, w.SourceFSAdapter, args.SourceRoots)
	w.DisplaySourceRoots(ctx, finder.Mappings())

	builder := NewSourceReportBuilder(w.SourceFSAdapter, finder, BuildOptions{
		ProjectRoot: args.ProjectRoot,
		Branches:    args.Branches,
		Jobs:        args.Jobs,
	})

	reports, err := builder.Build(ctx, coverage)
	if err != nil {
		return nil, fmt.Errorf("build source reports: %w", err)
	}

	return reports, nil
}
