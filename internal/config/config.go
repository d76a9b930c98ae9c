// Package config provides Viper-based configuration loading for the converter.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ItemDBConfig holds the local rAthena item database inputs.
type ItemDBConfig struct {
	// Paths is the ordered list of item_db YAML files to index.
	// Later paths override earlier ones on duplicate item ids.
	Paths []string `mapstructure:"paths"`
}

// OutputConfig holds the target artifact paths.
type OutputConfig struct {
	// MobDB is the path of the upserted mob_db YAML document.
	MobDB string `mapstructure:"mob_db"`
	// Spawn is the path of the append-only spawn line file.
	Spawn string `mapstructure:"spawn"`
	// Skill is the path of the append-only mob_skill_db line file.
	Skill string `mapstructure:"skill"`
}

// DivinePrideConfig holds the remote API connection settings.
type DivinePrideConfig struct {
	// APIBaseURL is the API root, e.g. "https://www.divine-pride.net/api/database".
	APIBaseURL string `mapstructure:"api_base_url"`
	// APIKey is passed through as the apiKey query parameter. Optional, but
	// unauthenticated requests may be throttled by the vendor.
	APIKey string `mapstructure:"api_key"`
	// MonsterPrefix is the endpoint path segment for monster lookups.
	MonsterPrefix string `mapstructure:"monster_prefix"`
	// Server selects the vendor data variant, e.g. "iRO" or "Renewal".
	Server string `mapstructure:"server"`
	// Timeout bounds each monster fetch.
	Timeout time.Duration `mapstructure:"timeout"`
}

// MonsterURL returns the full fetch URL for one monster id.
//
// Precondition: APIBaseURL and MonsterPrefix must be non-empty.
// Postcondition: Returns a fully-qualified URL including apiKey and server.
func (d DivinePrideConfig) MonsterURL(id int) string {
	return fmt.Sprintf(
		"%s/%s/%d?apiKey=%s&server=%s",
		strings.TrimRight(d.APIBaseURL, "/"), d.MonsterPrefix, id, d.APIKey, d.Server,
	)
}

// SpawnConfig holds fallbacks for spawn lines when the remote record omits them.
type SpawnConfig struct {
	// Amount is the spawn count used when a spawn block has none.
	Amount int `mapstructure:"amount"`
	// RespawnDelayMs is the respawn delay in milliseconds used when a spawn
	// block has none.
	RespawnDelayMs int `mapstructure:"respawn_delay_ms"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	ItemDB      ItemDBConfig      `mapstructure:"item_db"`
	Output      OutputConfig      `mapstructure:"output"`
	DivinePride DivinePrideConfig `mapstructure:"divine_pride"`
	Spawn       SpawnConfig       `mapstructure:"spawn"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	// MvpDamageTaken overrides the DamageTaken stat for MVP-tier monsters.
	MvpDamageTaken int `mapstructure:"mvp_damage_taken"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if len(c.ItemDB.Paths) == 0 {
		errs = append(errs, "item_db.paths must list at least one item database file")
	}
	for i, p := range c.ItemDB.Paths {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Sprintf("item_db.paths[%d] must not be empty", i))
		}
	}

	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDivinePride(c.DivinePride); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSpawn(c.Spawn); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if c.MvpDamageTaken < 1 {
		errs = append(errs, fmt.Sprintf("mvp_damage_taken must be >= 1, got %d", c.MvpDamageTaken))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	var errs []string
	if o.MobDB == "" {
		errs = append(errs, "output.mob_db must not be empty")
	}
	if o.Spawn == "" {
		errs = append(errs, "output.spawn must not be empty")
	}
	if o.Skill == "" {
		errs = append(errs, "output.skill must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDivinePride(d DivinePrideConfig) error {
	var errs []string
	if d.APIBaseURL == "" {
		errs = append(errs, "divine_pride.api_base_url must not be empty")
	}
	if d.MonsterPrefix == "" {
		errs = append(errs, "divine_pride.monster_prefix must not be empty")
	}
	if d.Server == "" {
		errs = append(errs, "divine_pride.server must not be empty")
	}
	if d.Timeout <= 0 {
		errs = append(errs, fmt.Sprintf("divine_pride.timeout must be positive, got %s", d.Timeout))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSpawn(s SpawnConfig) error {
	var errs []string
	if s.Amount < 1 {
		errs = append(errs, fmt.Sprintf("spawn.amount must be >= 1, got %d", s.Amount))
	}
	if s.RespawnDelayMs < 0 {
		errs = append(errs, fmt.Sprintf("spawn.respawn_delay_ms must be >= 0, got %d", s.RespawnDelayMs))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with MOBGEN_ prefix
	v.SetEnvPrefix("MOBGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.mob_db", "export/mob_db.yml")
	v.SetDefault("output.spawn", "export/spawns.txt")
	v.SetDefault("output.skill", "export/mob_skill_db.txt")

	v.SetDefault("divine_pride.api_base_url", "https://www.divine-pride.net/api/database")
	v.SetDefault("divine_pride.monster_prefix", "Monster")
	v.SetDefault("divine_pride.server", "Renewal")
	v.SetDefault("divine_pride.timeout", "10s")

	v.SetDefault("spawn.amount", 1)
	v.SetDefault("spawn.respawn_delay_ms", 5000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("mvp_damage_taken", 10)
}
