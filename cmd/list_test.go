package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jacov.dev/pkg/jacov/internal/domain"
	m "jacov.dev/pkg/jacov/internal/model"
)

func TestListCmd_PassesArguments(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	dir := t.TempDir()
	mustMkdirAll(t, filepath.Join(dir, "src", "main", "java"))

	mockWorkflow.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
			return args.ProjectRoot == m.Path(dir) &&
				assert.ObjectsAreEqual([]m.SourceRoot{{Dir: m.Path(filepath.Join(dir, "src", "main", "java"))}}, args.SourceRoots)
		})).
		Return(nil).
		Once()

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--project", dir})

	require.NoError(t, cmd.Execute())
}

func TestListCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().
		List(mock.Anything, mock.Anything).
		Return(errors.New("read coverage report: open missing.xml: no such file or directory")).
		Once()

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--project", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read coverage report")
}
