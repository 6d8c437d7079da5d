package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "jacov.dev/pkg/jacov/internal/model"
)

const (
	highCoverage   = 80.0
	mediumCoverage = 50.0
)

// StyledUI implements UI with colored output for interactive terminals.
type StyledUI struct {
	out io.Writer

	title  lipgloss.Style
	muted  lipgloss.Style
	high   lipgloss.Style
	medium lipgloss.Style
	low    lipgloss.Style
	done   lipgloss.Style
}

// NewStyledUI creates a StyledUI writing to the command output.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	out := cmd.OutOrStdout()
	renderer := lipgloss.NewRenderer(out)

	return &StyledUI{
		out:    out,
		title:  renderer.NewStyle().Bold(true),
		muted:  renderer.NewStyle().Faint(true),
		high:   renderer.NewStyle().Foreground(lipgloss.Color("2")),
		medium: renderer.NewStyle().Foreground(lipgloss.Color("3")),
		low:    renderer.NewStyle().Foreground(lipgloss.Color("1")),
		done:   renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

// DisplaySourceRoots prints each source root with its path mapping.
func (s *StyledUI) DisplaySourceRoots(ctx context.Context, roots []m.RootMapping) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, root := range roots {
		s.printf("%s %s\n", s.title.Render(string(root.Dir)), s.muted.Render(root.Mapping))
	}
}

// DisplaySourceReports prints the per-file coverage table with colored percentages.
func (s *StyledUI) DisplaySourceReports(ctx context.Context, reports []m.SourceReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderCoverageTable(reports, s.styledPercent))

	return nil
}

// DisplaySkipped explains why nothing was reported.
func (s *StyledUI) DisplaySkipped(ctx context.Context, reason string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %s\n", s.medium.Render("skipped:"), reason)
}

// DisplayPayload prints the request body instead of sending it.
func (s *StyledUI) DisplayPayload(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", payload)

	return nil
}

// DisplayUploadResult confirms a successful upload.
func (s *StyledUI) DisplayUploadResult(ctx context.Context, endpoint string, files int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s %d file(s) %s\n", s.done.Render("uploaded"), files, s.muted.Render(endpoint))
}

func (s *StyledUI) styledPercent(covered, relevant int) string {
	value := percent(covered, relevant)
	text := plainPercent(covered, relevant)

	switch {
	case value >= highCoverage:
		return s.high.Render(text)
	case value >= mediumCoverage:
		return s.medium.Render(text)
	default:
		return s.low.Render(text)
	}
}

func (s *StyledUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
