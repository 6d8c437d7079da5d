package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "jacov.dev/pkg/jacov/internal/domain/mocks"
	m "jacov.dev/pkg/jacov/internal/model"
)

func TestMain(tm *testing.M) {
	logDir, err := os.MkdirTemp("", "jacov-cmd-test")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	viper.Set(logFilenameKey, filepath.Join(logDir, "jacov.log"))

	code := tm.Run()

	_ = os.RemoveAll(logDir)
	os.Exit(code)
}

func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "jacov", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{reportFlagName, sourceDirFlagName, projectFlagName, branchesFlagName, jobsFlagName, envFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "DIR=PACKAGE")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, reportReader)
	assert.NotNil(t, gitAdapter)

	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"report", "list", "init", "version"})
}

func TestNewWorkflow(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.NotNil(t, newWorkflow(cmd))
}

func TestParseSourceDirs(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		entries []string
		want    []m.SourceRoot
	}{
		{
			name:    "detected mapping",
			entries: []string{"src/main/kotlin"},
			want:    []m.SourceRoot{{Dir: m.Path(filepath.Join(root, "src", "main", "kotlin"))}},
		},
		{
			name:    "explicit package",
			entries: []string{"src/main/kotlin=com.example"},
			want: []m.SourceRoot{
				{Dir: m.Path(filepath.Join(root, "src", "main", "kotlin")), Package: "com.example", Explicit: true},
			},
		},
		{
			name:    "explicit identity",
			entries: []string{"src/main/java="},
			want:    []m.SourceRoot{{Dir: m.Path(filepath.Join(root, "src", "main", "java")), Explicit: true}},
		},
		{
			name:    "absolute dir keeps order",
			entries: []string{"/abs/src", " lib = org.lib ", ""},
			want: []m.SourceRoot{
				{Dir: m.Path("/abs/src")},
				{Dir: m.Path(filepath.Join(root, "lib")), Package: "org.lib", Explicit: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSourceDirs(m.Path(root), tt.entries))
		})
	}
}

func TestParseSourceDirs_Defaults(t *testing.T) {
	root := t.TempDir()

	assert.Empty(t, parseSourceDirs(m.Path(root), nil))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "main", "java"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "main", "kotlin"), 0o755))

	assert.Equal(t, []m.SourceRoot{
		{Dir: m.Path(filepath.Join(root, "src", "main", "kotlin"))},
		{Dir: m.Path(filepath.Join(root, "src", "main", "java"))},
	}, parseSourceDirs(m.Path(root), []string{}))
}

func TestResolveProjectRoot(t *testing.T) {
	ctx := context.Background()

	t.Run("configured", func(t *testing.T) {
		dir := t.TempDir()

		got, err := resolveProjectRoot(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, m.Path(dir), got)
	})

	t.Run("nearest build file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "build.gradle.kts"), []byte("plugins {}\n"), 0o644))

		nested := filepath.Join(dir, "src", "main")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		chdir(t, nested)

		want, err := os.Getwd()
		require.NoError(t, err)

		got, err := resolveProjectRoot(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Dir(filepath.Dir(want))), got)
	})

	t.Run("falls back to working directory", func(t *testing.T) {
		chdir(t, t.TempDir())

		want, err := os.Getwd()
		require.NoError(t, err)

		got, err := resolveProjectRoot(ctx, "")
		require.NoError(t, err)

		if got != m.Path(want) {
			// A build file in a parent of the temp dir is found first.
			assert.Contains(t, want, string(got))
		}
	})
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, m.Path("/report.xml"), resolvePath("/project", "/report.xml"))
	assert.Equal(t, m.Path(filepath.Join("/project", "build", "report.xml")), resolvePath("/project", "build/report.xml"))
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}
