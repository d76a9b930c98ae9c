package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		ItemDB: ItemDBConfig{
			Paths: []string{"data/item_db_equip.yml", "data/item_db_etc.yml"},
		},
		Output: OutputConfig{
			MobDB: "export/mob_db.yml",
			Spawn: "export/spawns.txt",
			Skill: "export/mob_skill_db.txt",
		},
		DivinePride: DivinePrideConfig{
			APIBaseURL:    "https://www.divine-pride.net/api/database",
			APIKey:        "testkey",
			MonsterPrefix: "Monster",
			Server:        "iRO",
			Timeout:       10 * time.Second,
		},
		Spawn: SpawnConfig{
			Amount:         1,
			RespawnDelayMs: 5000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		MvpDamageTaken: 10,
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestMonsterURL(t *testing.T) {
	cfg := validConfig()
	url := cfg.DivinePride.MonsterURL(1002)
	assert.Equal(t,
		"https://www.divine-pride.net/api/database/Monster/1002?apiKey=testkey&server=iRO",
		url)
}

func TestMonsterURLTrailingSlash(t *testing.T) {
	cfg := validConfig()
	cfg.DivinePride.APIBaseURL = "https://www.divine-pride.net/api/database/"
	url := cfg.DivinePride.MonsterURL(1002)
	assert.NotContains(t, url, "//Monster")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
item_db:
  paths:
    - data/item_db_equip.yml
output:
  mob_db: out/mob_db.yml
  spawn: out/spawns.txt
  skill: out/mob_skill_db.txt
divine_pride:
  api_base_url: https://example.test/api
  api_key: secret
  server: iRO
logging:
  level: debug
  format: console
mvp_damage_taken: 25
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"data/item_db_equip.yml"}, cfg.ItemDB.Paths)
	assert.Equal(t, "out/mob_db.yml", cfg.Output.MobDB)
	assert.Equal(t, "secret", cfg.DivinePride.APIKey)
	assert.Equal(t, "iRO", cfg.DivinePride.Server)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 25, cfg.MvpDamageTaken)
	// Defaults fill unset keys.
	assert.Equal(t, "Monster", cfg.DivinePride.MonsterPrefix)
	assert.Equal(t, 10*time.Second, cfg.DivinePride.Timeout)
	assert.Equal(t, 5000, cfg.Spawn.RespawnDelayMs)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsEmptyItemDB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
output:
  mob_db: out/mob_db.yml
  spawn: out/spawns.txt
  skill: out/mob_skill_db.txt
`), 0644)
	require.NoError(t, err)

	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item_db.paths")
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("item_db.paths", []string{"data/item_db.yml"})

	cfg, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"data/item_db.yml"}, cfg.ItemDB.Paths)
	assert.Equal(t, "export/mob_db.yml", cfg.Output.MobDB)
}

func TestValidateOutputPaths(t *testing.T) {
	cfg := validConfig()
	cfg.Output.MobDB = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Output.Spawn = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Output.Skill = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateDivinePrideBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DivinePride.APIBaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateDivinePrideTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.DivinePride.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateMvpDamageTaken(t *testing.T) {
	cfg := validConfig()
	cfg.MvpDamageTaken = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateSpawnAmount(t *testing.T) {
	cfg := validConfig()
	cfg.Spawn.Amount = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item_db.paths")
	assert.Contains(t, err.Error(), "output.mob_db")
	assert.Contains(t, err.Error(), "divine_pride.api_base_url")
}

// Property-based tests

func TestPropertyValidMvpDamageTaken(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dmg := rapid.IntRange(1, 100000).Draw(t, "mvp_damage_taken")
		cfg := validConfig()
		cfg.MvpDamageTaken = dmg
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid mvp_damage_taken %d rejected: %v", dmg, err)
		}
	})
}

func TestPropertyMonsterURLContainsAllParts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.IntRange(1, 99999).Draw(t, "id")
		key := rapid.StringMatching(`[a-zA-Z0-9]{4,16}`).Draw(t, "key")
		server := rapid.StringMatching(`[a-zA-Z]{2,8}`).Draw(t, "server")

		dp := DivinePrideConfig{
			APIBaseURL:    "https://example.test/api",
			APIKey:        key,
			MonsterPrefix: "Monster",
			Server:        server,
			Timeout:       time.Second,
		}
		url := dp.MonsterURL(id)
		for _, part := range []string{key, server, "Monster"} {
			if !strings.Contains(url, part) {
				t.Fatalf("url %q missing %q", url, part)
			}
		}
	})
}
