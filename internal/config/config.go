package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config keys, also readable from the environment with the YTDL_ prefix
const (
	KeyLogMode        = "mode"
	KeyLogFile        = "log_file"
	KeyYTDLPPath      = "ytdlp_path"
	KeyFFmpegLocation = "ffmpeg_location"
	KeyHistoryDB      = "history_db"
	KeyResolveTimeout = "resolve_timeout"
)

// Config defaults
const (
	EnvPrefix             = "YTDL"
	ConfigName            = "config"
	AppConfigDirName      = "ytdl-desktop"
	DefaultYTDLPPath      = "yt-dlp"
	DefaultResolveTimeout = 60 * time.Second
	DefaultHistoryDBName  = "history.db"
)

// AppConfig is the process level configuration: where the external tools
// live and how the app logs. User choices live in Settings instead.
type AppConfig struct {
	LogMode        string
	LogFile        string
	YTDLPPath      string
	FFmpegLocation string
	HistoryDB      string
	ResolveTimeout time.Duration

	// File is the config file that was read, empty when only env/defaults were used
	File string
}

// Load reads an optional config file from the usual locations plus
// YTDL_* environment variables. A missing file is not an error.
func Load(extraPaths ...string) (*AppConfig, error) {
	v := viper.New()
	for _, p := range extraPaths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, AppConfigDirName))
	}
	v.SetConfigName(ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyLogMode, "debug")
	v.SetDefault(KeyYTDLPPath, DefaultYTDLPPath)
	v.SetDefault(KeyResolveTimeout, DefaultResolveTimeout)
	v.SetDefault(KeyHistoryDB, defaultHistoryDB())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config (used file: %q): %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &AppConfig{
		LogMode:        v.GetString(KeyLogMode),
		LogFile:        v.GetString(KeyLogFile),
		YTDLPPath:      v.GetString(KeyYTDLPPath),
		FFmpegLocation: v.GetString(KeyFFmpegLocation),
		HistoryDB:      v.GetString(KeyHistoryDB),
		ResolveTimeout: v.GetDuration(KeyResolveTimeout),
		File:           v.ConfigFileUsed(),
	}
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = DefaultResolveTimeout
	}
	return cfg, nil
}

func defaultHistoryDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultHistoryDBName
	}
	return filepath.Join(dir, AppConfigDirName, DefaultHistoryDBName)
}
