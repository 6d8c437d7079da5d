// Package cmd provides the root command and CLI setup for jacov.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"jacov.dev/pkg/jacov/internal/adapter"
	"jacov.dev/pkg/jacov/internal/controller"
	"jacov.dev/pkg/jacov/internal/domain"
	m "jacov.dev/pkg/jacov/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportReader adapter.ReportReader
var gitAdapter adapter.GitAdapter
var workflow domain.Workflow

var reportPathFlag string
var sourceDirsFlag []string
var projectRootFlag string
var branchesFlag bool
var jobsFlag int
var envFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies. The upload client and the environment
	// depend on flags and are created once the command line is parsed.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportReader = adapter.NewJacocoReportReader()
	gitAdapter = adapter.NewLocalGitAdapter()
}

const sourceDirsHelp = `Source directories are searched in order and the first match wins.
Each entry is DIR or DIR=PACKAGE:
  - src/main/kotlin              detect the root package from the directory
  - src/main/kotlin=com.example  files of com.example live directly in DIR
  - src/main/java=               DIR mirrors the full package layout`

const rootLongDescription = `Jacov uploads JaCoCo coverage reports to Coveralls. It maps every file of
the XML report onto the project sources, builds per-line coverage vectors and
submits them together with git and CI metadata.

` + sourceDirsHelp

const reportLongDescription = `Upload the coverage report to Coveralls.

The repository token is read from COVERALLS_REPO_TOKEN (or GITHUB_TOKEN).
COVERALLS_PARALLEL and COVERALLS_FLAG_NAME are forwarded when set.

` + sourceDirsHelp

const listLongDescription = `List the files of the coverage report that resolve to project sources,
with their relevant and covered line counts. Nothing is uploaded.

` + sourceDirsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd returns a root command with its persistent flags configured.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jacov",
		Short: "JaCoCo to Coveralls uploader",
		Long:  rootLongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if workflow == nil {
				workflow = newWorkflow(cmd)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

	return domain.NewWorkflow(
		fsAdapter,
		reportReader,
		gitAdapter,
		adapter.NewHTTPCoverallsClient(uploadTimeout()),
		ui,
		adapter.NewEnvLookup(viper.GetString(envFileKey)),
	)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportPathFlag, reportFlagName, "r",
			viper.GetString(reportPathKey),
			"path to the JaCoCo XML report, relative to the project root",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportPathKey)

	cmd.PersistentFlags().StringArrayVarP(&sourceDirsFlag, sourceDirFlagName, "s", viper.GetStringSlice(sourceDirsKey), "source directory as DIR or DIR=PACKAGE (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourceDirFlagName), sourceDirsKey)

	cmd.PersistentFlags().StringVar(&projectRootFlag, projectFlagName, viper.GetString(projectRootKey), "project root (default: nearest directory with a Gradle or Maven build file)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(projectFlagName), projectRootKey)

	cmd.PersistentFlags().BoolVar(&branchesFlag, branchesFlagName, viper.GetBool(branchesKey), "include branch coverage")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(branchesFlagName), branchesKey)

	cmd.PersistentFlags().IntVarP(&jobsFlag, jobsFlagName, "j", viper.GetInt(jobsKey), "number of source files read in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(jobsFlagName), jobsKey)

	cmd.PersistentFlags().StringVar(&envFileFlag, envFileFlagName, viper.GetString(envFileKey), "dotenv file with fallback environment variables")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(envFileFlagName), envFileKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// sourceArgs assembles the report and source selection from the configuration.
func sourceArgs(ctx context.Context) (domain.SourceArgs, error) {
	projectRoot, err := resolveProjectRoot(ctx, viper.GetString(projectRootKey))
	if err != nil {
		return domain.SourceArgs{}, err
	}

	return domain.SourceArgs{
		ReportPath:  resolvePath(projectRoot, viper.GetString(reportPathKey)),
		ProjectRoot: projectRoot,
		SourceRoots: parseSourceDirs(projectRoot, viper.GetStringSlice(sourceDirsKey)),
		Branches:    viper.GetBool(branchesKey),
		Jobs:        viper.GetInt(jobsKey),
	}, nil
}

// resolveProjectRoot returns the configured root, or the nearest directory
// holding a build file, or the working directory.
func resolveProjectRoot(ctx context.Context, configured string) (m.Path, error) {
	if strings.TrimSpace(configured) != "" {
		abs, err := filepath.Abs(configured)
		if err != nil {
			return "", fmt.Errorf("resolve project root: %w", err)
		}

		return m.Path(abs), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}

	root, err := fsAdapter.FindProjectRoot(ctx, m.Path(wd))
	if err != nil {
		return m.Path(wd), nil
	}

	return root, nil
}

func resolvePath(root m.Path, p string) m.Path {
	if filepath.IsAbs(p) {
		return m.Path(p)
	}

	return m.Path(filepath.Join(string(root), filepath.FromSlash(p)))
}

// parseSourceDirs turns DIR or DIR=PACKAGE entries into source roots. With
// no entries the conventional directories that exist are used.
func parseSourceDirs(root m.Path, entries []string) []m.SourceRoot {
	var roots []m.SourceRoot

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		dir, pkg, explicit := strings.Cut(entry, "=")
		roots = append(roots, m.SourceRoot{
			Dir:      resolvePath(root, strings.TrimSpace(dir)),
			Package:  strings.TrimSpace(pkg),
			Explicit: explicit,
		})
	}

	if len(entries) > 0 {
		return roots
	}

	for _, dir := range defaultSourceDirs {
		path := resolvePath(root, dir)
		if info, err := os.Stat(string(path)); err == nil && info.IsDir() {
			roots = append(roots, m.SourceRoot{Dir: path})
		}
	}

	return roots
}
