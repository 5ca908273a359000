package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token    string  `yaml:"token"`
	Workers  int     `yaml:"workers"` // concurrent update handlers
	AdminIDs []int64 `yaml:"admin_ids"`
}

type LogConfig struct {
	Level      string `yaml:"level"`     // trace|debug|info|warn|error
	FilePath   string `yaml:"file_path"` // append-mode file sink
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type DataConfig struct {
	Dir string `yaml:"dir"` // directory holding the JSON data files
}

type WebConfig struct {
	Port int `yaml:"port"` // health + metrics listener
}

type SchedConfig struct {
	ReminderAt string `yaml:"reminder_at"` // HH:MM, daily
	RotationAt string `yaml:"rotation_at"` // HH:MM, Mondays
}

type Config struct {
	Bot   BotConfig   `yaml:"bot"`
	Log   LogConfig   `yaml:"log"`
	Data  DataConfig  `yaml:"data"`
	Web   WebConfig   `yaml:"web"`
	Sched SchedConfig `yaml:"sched"`

	Runtime RuntimeConfig `yaml:"-"`
}

// Load reads the YAML config file, applies defaults and then environment
// overrides. The environment wins so the container contract
// (DATA_FILE_DIRECTORY, BOT_API_TOKEN, ...) stays authoritative.
func Load(path string, dev bool) (*Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No file: run on defaults + environment alone.
	} else if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// defaults
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 8
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.FilePath == "" {
		cfg.Log.FilePath = "wohnheimsbot.log"
	}
	if cfg.Log.MaxSizeMB <= 0 {
		cfg.Log.MaxSizeMB = 20
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Web.Port == 0 {
		cfg.Web.Port = 8090
	}
	if cfg.Sched.ReminderAt == "" {
		cfg.Sched.ReminderAt = "10:00"
	}
	if cfg.Sched.RotationAt == "" {
		cfg.Sched.RotationAt = "03:00"
	}

	// environment overrides
	if v := os.Getenv("BOT_API_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("DATA_FILE_DIRECTORY"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("LOG_FILE_PATH"); v != "" {
		cfg.Log.FilePath = v
	}
	if v := os.Getenv("ADMIN_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_USER_ID: %w", err)
		}
		cfg.Bot.AdminIDs = appendUnique(cfg.Bot.AdminIDs, id)
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

// ValidateBot checks the parts only the bot process needs. The
// accept-requests task runs without a Telegram token.
func (c *Config) ValidateBot() error {
	if c.Bot.Token == "" {
		return errors.New("bot.token is required (or set BOT_API_TOKEN)")
	}
	return nil
}

func appendUnique(ids []int64, id int64) []int64 {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}
