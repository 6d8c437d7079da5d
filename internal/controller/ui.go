// Package controller provides output adapters for displaying coverage reports.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "jacov.dev/pkg/jacov/internal/model"
)

// UI defines the interface for displaying report progress and results.
// Implementations can use different output methods (plain tables, styled text).
type UI interface {
	DisplaySourceRoots(ctx context.Context, roots []m.RootMapping)
	DisplaySourceReports(ctx context.Context, reports []m.SourceReport) error
	DisplaySkipped(ctx context.Context, reason string)
	DisplayPayload(ctx context.Context, payload []byte) error
	DisplayUploadResult(ctx context.Context, endpoint string, files int)
}

// NewUI returns a StyledUI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
