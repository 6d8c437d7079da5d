package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "jacov.dev/pkg/jacov/internal/model"
)

func intPtr(v int) *int {
	return &v
}

func sampleReports() []m.SourceReport {
	return []m.SourceReport{
		{Name: "src/main/kotlin/Main.kt", Coverage: []*int{nil, intPtr(1), intPtr(1), intPtr(0)}},
		{Name: "src/main/kotlin/internal/Util.kt", Coverage: []*int{intPtr(1), nil}},
	}
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	return cmd, out
}

func TestSimpleUI_DisplaySourceReports(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplaySourceReports(context.Background(), sampleReports()))

	output := out.String()
	assert.Contains(t, output, "File")
	assert.Contains(t, output, "Coverage")
	assert.Contains(t, output, "src/main/kotlin/Main.kt")
	assert.Contains(t, output, "66.67%")
	assert.Contains(t, output, "src/main/kotlin/internal/Util.kt")
	assert.Contains(t, output, "100.00%")
	assert.Contains(t, output, "Total Files 2")
	assert.Contains(t, output, "75.00%")
}

func TestSimpleUI_DisplaySourceReportsEmpty(t *testing.T) {
	cmd, out := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplaySourceReports(context.Background(), nil))
	assert.Contains(t, out.String(), "Total Files 0")
	assert.Contains(t, out.String(), "0.00%")
}

func TestSimpleUI_Messages(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	ui.DisplaySourceRoots(ctx, []m.RootMapping{{Dir: "src/main/kotlin", Mapping: "strip foo/"}})
	ui.DisplaySkipped(ctx, "source file set empty")
	require.NoError(t, ui.DisplayPayload(ctx, []byte(`{"repo_token":"t"}`)))
	ui.DisplayUploadResult(ctx, "https://coveralls.io/api/v1/jobs", 2)

	assert.Equal(t, "Source root src/main/kotlin (strip foo/)\n"+
		"Skipping coveralls report: source file set empty\n"+
		"{\"repo_token\":\"t\"}\n"+
		"Uploaded coverage for 2 file(s) to https://coveralls.io/api/v1/jobs\n", out.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.DisplaySourceReports(ctx, sampleReports()), context.Canceled)
	assert.ErrorIs(t, ui.DisplayPayload(ctx, []byte("{}")), context.Canceled)
	ui.DisplaySkipped(ctx, "reason")
	assert.Empty(t, out.String())
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 0.0, percent(0, 0), 0.001)
	assert.InDelta(t, 50.0, percent(1, 2), 0.001)
	assert.Equal(t, "33.33%", plainPercent(1, 3))
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &StyledUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}
