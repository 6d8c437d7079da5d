package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "jacov.dev/pkg/jacov/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySourceRoots prints each source root with its path mapping.
func (s *SimpleUI) DisplaySourceRoots(ctx context.Context, roots []m.RootMapping) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, root := range roots {
		s.printf("Source root %s (%s)\n", root.Dir, root.Mapping)
	}
}

// DisplaySourceReports prints the per-file coverage table.
func (s *SimpleUI) DisplaySourceReports(ctx context.Context, reports []m.SourceReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderCoverageTable(reports, plainPercent))

	return nil
}

// DisplaySkipped explains why nothing was reported.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, reason string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Skipping coveralls report: %s\n", reason)
}

// DisplayPayload prints the request body instead of sending it.
func (s *SimpleUI) DisplayPayload(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", payload)

	return nil
}

// DisplayUploadResult confirms a successful upload.
func (s *SimpleUI) DisplayUploadResult(ctx context.Context, endpoint string, files int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Uploaded coverage for %d file(s) to %s\n", files, endpoint)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// percentFormatter renders a coverage ratio for a table cell.
type percentFormatter func(covered, relevant int) string

func plainPercent(covered, relevant int) string {
	return fmt.Sprintf("%.2f%%", percent(covered, relevant))
}

func percent(covered, relevant int) float64 {
	if relevant == 0 {
		return 0
	}

	return float64(covered) * 100 / float64(relevant)
}

func renderCoverageTable(reports []m.SourceReport, formatPercent percentFormatter) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Relevant", "Covered", "Coverage"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	totalRelevant, totalCovered := 0, 0

	for _, report := range reports {
		relevant, covered := report.RelevantLines(), report.CoveredLines()
		totalRelevant += relevant
		totalCovered += covered

		table.Append([]string{
			report.Name,
			fmt.Sprintf("%d", relevant),
			fmt.Sprintf("%d", covered),
			formatPercent(covered, relevant),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		fmt.Sprintf("%d", totalRelevant),
		fmt.Sprintf("%d", totalCovered),
		formatPercent(totalCovered, totalRelevant),
	})

	table.Render()

	return tableBuffer.String()
}
