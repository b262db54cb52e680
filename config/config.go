// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2017-2023 The Spacemesh developers

package config

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/spacemeshos/radix/logging"
	"github.com/spacemeshos/radix/service"
	"github.com/spacemeshos/radix/shell"
)

const (
	defaultDbDirName      = "db"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "radix.log"
	defaultMaxLogFiles    = 3
	defaultMaxLogFileSize = 10
)

// Config defines the configuration options for radix.
//
// Options are resolved in order: defaults, command line (to locate the
// configuration file), configuration file, then the command line again.
//
//nolint:lll
type Config struct {
	RadixDir       string  `long:"radixdir"       description:"The base directory that contains radix's history, logs, configuration file, etc."`
	ConfigFile     string  `long:"configfile"     description:"Path to configuration file"                                                       short:"c"`
	DbDir          string  `long:"dbdir"          description:"The directory to store the history DB within"`
	LogDir         string  `long:"logdir"         description:"Directory to log output."`
	DebugLog       bool    `long:"debuglog"       description:"Enable debug logs"`
	JSONLog        bool    `long:"jsonlog"        description:"Whether to log in JSON format"`
	MaxLogFiles    int     `long:"maxlogfiles"    description:"Maximum logfiles to keep (0 for no rotation)"`
	MaxLogFileSize int     `long:"maxlogfilesize" description:"Maximum logfile size in MB"`
	MetricsPort    *uint16 `long:"metrics-port"   description:"The port to expose metrics"`
	ShowHistory    bool    `long:"show-history"   description:"Print the recorded conversions and exit"`

	CPUProfile string `long:"cpuprofile" description:"Write CPU profile to the specified file"`

	Service service.Config `group:"Service"`
	Shell   shell.Config   `group:"Shell"`
}

// DefaultConfig returns a config with default hardcoded values.
func DefaultConfig() *Config {
	radixDir := "./radix"
	cacheDir, err := os.UserCacheDir()
	if err == nil {
		radixDir = filepath.Join(cacheDir, "radix")
	}

	return &Config{
		RadixDir:       radixDir,
		DbDir:          filepath.Join(radixDir, defaultDbDirName),
		LogDir:         filepath.Join(radixDir, defaultLogDirname),
		MaxLogFiles:    defaultMaxLogFiles,
		MaxLogFileSize: defaultMaxLogFileSize,
		Service:        service.DefaultConfig(),
	}
}

// ParseFlags reads values from command line arguments.
// It returns the arguments left after all options were parsed.
func ParseFlags(preCfg *Config, args []string) (*Config, []string, error) {
	rest, err := flags.NewParser(preCfg, flags.Default).ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	return preCfg, rest, nil
}

// ReadConfigFile reads config from an ini file.
// It uses the provided `cfg` as a base config and overrides it with the values
// from the config file.
func ReadConfigFile(ctx context.Context, cfg *Config) (*Config, error) {
	if cfg.ConfigFile == "" {
		return cfg, nil
	}
	logging.FromContext(ctx).Sugar().Debugf("reading config from %s", cfg.ConfigFile)
	if err := flags.IniParse(cleanAndExpandPath(cfg.ConfigFile), cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from %v: %w", cfg.ConfigFile, err)
	}

	return cfg, nil
}

// SetupConfig expands paths and initializes filesystem.
func SetupConfig(cfg *Config) (*Config, error) {
	// If the provided radix directory is not the default, we'll modify the
	// path to all of the files and directories that will live within it.
	defaultCfg := DefaultConfig()
	if cfg.RadixDir != defaultCfg.RadixDir {
		if cfg.LogDir == defaultCfg.LogDir {
			cfg.LogDir = filepath.Join(cfg.RadixDir, defaultLogDirname)
		}
		if cfg.DbDir == defaultCfg.DbDir {
			cfg.DbDir = filepath.Join(cfg.RadixDir, defaultDbDirName)
		}
	}

	cfg.RadixDir = cleanAndExpandPath(cfg.RadixDir)
	cfg.DbDir = cleanAndExpandPath(cfg.DbDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	// Create the radix directory if it doesn't already exist.
	if err := os.MkdirAll(cfg.RadixDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create %v: %w", cfg.RadixDir, err)
	}

	return cfg, nil
}

// LogFile returns the logging configuration of the rotating log file.
func (cfg *Config) LogFile() logging.FileConfig {
	if cfg.LogDir == "" {
		return logging.FileConfig{}
	}
	return logging.FileConfig{
		Filename:   filepath.Join(cfg.LogDir, defaultLogFilename),
		MaxBackups: cfg.MaxLogFiles,
		MaxSize:    cfg.MaxLogFileSize,
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
// This function is taken from https://github.com/btcsuite/btcd
func cleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		var homeDir string
		user, err := user.Current()
		if err == nil {
			homeDir = user.HomeDir
		} else {
			homeDir = os.Getenv("HOME")
		}

		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
