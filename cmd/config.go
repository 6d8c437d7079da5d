package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "jacov"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	reportFlagName    = "report"
	sourceDirFlagName = "source-dir"
	branchesFlagName  = "branches"
	jobsFlagName      = "jobs"
	projectFlagName   = "project"
	envFileFlagName   = "env-file"
	endpointFlagName  = "endpoint"
	timeoutFlagName   = "timeout"
	dryRunFlagName    = "dry-run"
	verboseFlagName   = "verbose"

	reportPathKey  = "report.path"
	sourceDirsKey  = "report.source_dirs"
	branchesKey    = "report.branches"
	jobsKey        = "report.jobs"
	projectRootKey = "project.root"
	endpointKey    = "api.endpoint"
	timeoutKey     = "api.timeout"
	envFileKey     = "env.file"

	defaultReportPath = "build/reports/jacoco/test/jacocoTestReport.xml"
	defaultBranches   = false
	defaultJobs       = 1
	defaultEndpoint   = "https://coveralls.io/api/v1/jobs"
	defaultTimeout    = 10 * time.Second
	defaultEnvFile    = ".env"

	envPrefix = "JACOV"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".jacov.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultSourceDirs are probed under the project root when no source
// directory is configured.
var defaultSourceDirs = []string{"src/main/kotlin", "src/main/java"}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(configVersionKey, currentConfigVersion)
	v.SetDefault(reportPathKey, defaultReportPath)
	v.SetDefault(sourceDirsKey, []string{})
	v.SetDefault(branchesKey, defaultBranches)
	v.SetDefault(jobsKey, defaultJobs)
	v.SetDefault(projectRootKey, "")
	v.SetDefault(endpointKey, defaultEndpoint)
	v.SetDefault(timeoutKey, int64(defaultTimeout.Seconds()))
	v.SetDefault(envFileKey, defaultEnvFile)

	// Logging defaults (used by config/env and as fallbacks for flags).
	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, defaultLogVerbose)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
}

// uploadTimeout returns the configured upload timeout in seconds.
func uploadTimeout() time.Duration {
	seconds := viper.GetInt64(timeoutKey)
	if seconds <= 0 {
		return defaultTimeout
	}

	return time.Duration(seconds) * time.Second
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
