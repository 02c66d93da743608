/*
Package config manages TOML configuration for the suggestion engine.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct file
access for runtime changes.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/corvisa/spellsuggest/internal/utils"
)

// Config holds the entire configuration structure.
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Dict    DictConfig    `toml:"dict"`
	CLI     CliConfig     `toml:"cli"`
}

// SuggestConfig controls the behavior-selecting flags the engine
// consumes (spec.md §1, §6 Options).
type SuggestConfig struct {
	// Mode is one of "best", "fast", "double" (spec.md §2 SPS_BEST/FAST/DOUBLE).
	Mode string `toml:"mode"`
	// MaxCount is the default number of suggestions to return.
	MaxCount int `toml:"max_count"`
	// TimeoutMS bounds a single query's wall-clock time (spec.md §4.6 Deadline).
	TimeoutMS int `toml:"timeout_ms"`
	// BanBad inserts the bad word itself into the banned set before suggesting.
	BanBad bool `toml:"ban_bad"`
	// NeedCap ORs in ONECAP into the bad word's captype before suggesting.
	NeedCap bool `toml:"need_cap"`
}

// DictConfig holds dictionary/walk tuning parameters.
type DictConfig struct {
	MaxWordLen     int `toml:"max_word_len"`
	CompoundMinLen int `toml:"compound_min_len"`
	CompoundMax    int `toml:"compound_max"`
	CompoundSylMax int `toml:"compound_syl_max"`
	SFMax1         int `toml:"sf_max1"`
	SFMax2         int `toml:"sf_max2"`
	SFMax3         int `toml:"sf_max3"`
}

// CliConfig holds CLI interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	Interactive  bool `toml:"interactive"`
}

// DefaultConfig returns a Config with default values, matching the
// score constants and thresholds of spec.md §6.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			Mode:      "best",
			MaxCount:  25,
			TimeoutMS: 5000,
			BanBad:    false,
			NeedCap:   false,
		},
		Dict: DictConfig{
			MaxWordLen:     176,
			CompoundMinLen: 3,
			CompoundMax:    8,
			CompoundSylMax: 4,
			SFMax1:         200,
			SFMax2:         300,
			SFMax3:         400,
		},
		CLI: CliConfig{
			DefaultLimit: 15,
			Interactive:  false,
		},
	}
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return nil, err
	}
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		if recovered := recoverPartialConfig(configPath); recovered != nil {
			log.Warnf("Recovered partial config from %s after decode error: %v", configPath, err)
			return recovered, nil
		}
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// recoverPartialConfig salvages the suggest.max_count, timeout_ms,
// ban_bad, need_cap and dict.max_word_len keys that still parse out of
// a config file that otherwise fails to decode; every other key keeps
// its DefaultConfig value (a
// half-edited config.toml is common enough after a manual edit that
// falling straight back to DefaultConfig would needlessly discard the
// rest of the file).
func recoverPartialConfig(configPath string) *Config {
	data, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		return nil
	}
	cfg := DefaultConfig()
	if suggest, ok := utils.ExtractSection(data, "suggest"); ok {
		if v, ok := utils.ExtractInt64(suggest, "max_count"); ok {
			cfg.Suggest.MaxCount = v
		}
		if v, ok := utils.ExtractInt64(suggest, "timeout_ms"); ok {
			cfg.Suggest.TimeoutMS = v
		}
		if v, ok := utils.ExtractBool(suggest, "ban_bad"); ok {
			cfg.Suggest.BanBad = v
		}
		if v, ok := utils.ExtractBool(suggest, "need_cap"); ok {
			cfg.Suggest.NeedCap = v
		}
	}
	if dict, ok := utils.ExtractSection(data, "dict"); ok {
		if v, ok := utils.ExtractInt64(dict, "max_word_len"); ok {
			cfg.Dict.MaxWordLen = v
		}
	}
	return cfg
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if err := utils.LoadTOMLFile(configPath, &cfg); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// LoadConfigWithPriority resolves a config path (explicit flag first,
// then the platform config directory) and loads or creates it there,
// returning the Config and the path it was loaded from.
func LoadConfigWithPriority(explicitPath string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := InitConfig(explicitPath)
		return cfg, explicitPath, err
	}

	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Could not resolve executable path, using ./config.toml: %v", err)
		cfg, err := InitConfig("config.toml")
		return cfg, "config.toml", err
	}

	configPath, err := resolver.GetConfigPath("config.toml")
	if err != nil {
		return nil, "", err
	}
	cfg, err := InitConfig(configPath)
	return cfg, configPath, err
}

// Update changes a subset of suggest-related config values and saves to file.
func (c *Config) Update(configPath string, maxCount *int, timeoutMS *int, mode *string) error {
	s := &c.Suggest
	if maxCount != nil {
		s.MaxCount = *maxCount
	}
	if timeoutMS != nil {
		s.TimeoutMS = *timeoutMS
	}
	if mode != nil {
		s.Mode = *mode
	}
	return SaveConfig(c, configPath)
}
