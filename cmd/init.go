package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type starterConfig struct {
	Version int `yaml:"version"`
	Report  struct {
		Path       string   `yaml:"path"`
		SourceDirs []string `yaml:"source_dirs"`
		Branches   bool     `yaml:"branches"`
		Jobs       int      `yaml:"jobs"`
	} `yaml:"report"`
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	API struct {
		Endpoint string `yaml:"endpoint"`
		Timeout  int64  `yaml:"timeout"`
	} `yaml:"api"`
	Env struct {
		File string `yaml:"file"`
	} `yaml:"env"`
	Log struct {
		Filename   string `yaml:"filename"`
		Level      int    `yaml:"level"`
		Verbose    bool   `yaml:"verbose"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

// currentStarterConfig captures the effective configuration.
func currentStarterConfig() starterConfig {
	var cfg starterConfig

	cfg.Version = viper.GetInt(configVersionKey)
	cfg.Report.Path = viper.GetString(reportPathKey)
	cfg.Report.SourceDirs = viper.GetStringSlice(sourceDirsKey)
	cfg.Report.Branches = viper.GetBool(branchesKey)
	cfg.Report.Jobs = viper.GetInt(jobsKey)
	cfg.Project.Root = viper.GetString(projectRootKey)
	cfg.API.Endpoint = viper.GetString(endpointKey)
	cfg.API.Timeout = viper.GetInt64(timeoutKey)
	cfg.Env.File = viper.GetString(envFileKey)
	cfg.Log.Filename = viper.GetString(logFilenameKey)
	cfg.Log.Level = viper.GetInt(logLevelKey)
	cfg.Log.Verbose = viper.GetBool(logVerboseKey)
	cfg.Log.MaxSize = viper.GetInt(logMaxSizeKey)
	cfg.Log.MaxBackups = viper.GetInt(logMaxBackupsKey)
	cfg.Log.MaxAge = viper.GetInt(logMaxAgeKey)
	cfg.Log.Compress = viper.GetBool(logCompressKey)

	if cfg.Report.SourceDirs == nil {
		cfg.Report.SourceDirs = []string{}
	}

	return cfg
}

// writeStarterConfig renders cfg to path, refusing to overwrite a file.
func writeStarterConfig(path string, cfg starterConfig) error {
	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	// #nosec G304 - path is the fixed config file name
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config file %s already exists", path)
		}

		return err
	}

	if _, err := f.Write(contents); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default jacov.yaml configuration file",
		Long: `Create a jacov.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := writeStarterConfig(targetPath, currentStarterConfig()); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
