package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athena-tools/mobgen/internal/config"
	"github.com/athena-tools/mobgen/internal/convert"
	"github.com/athena-tools/mobgen/internal/divinepride"
)

func flexInt(n int) *divinepride.FlexInt {
	f := divinepride.FlexInt(n)
	return &f
}

func spawnCfg() config.SpawnConfig {
	return config.SpawnConfig{Amount: 1, RespawnDelayMs: 5000}
}

func TestBuildSpawns_Basic(t *testing.T) {
	m := &divinepride.Monster{
		ID:     1869,
		DBName: "FLAME_SKULL",
		Spawns: []divinepride.Spawn{
			{MapName: "abbey01", Amount: flexInt(21), RespawnTime: flexInt(5000)},
		},
	}

	lines := convert.BuildSpawns(m, spawnCfg())
	require.Len(t, lines, 1)
	assert.Equal(t, "abbey01,0,0\tmonster\tFlame Skull\t1869,21,5000", lines[0].Line())
}

func TestBuildSpawns_NoSpawnBlocks(t *testing.T) {
	m := &divinepride.Monster{ID: 1869, DBName: "FLAME_SKULL"}
	assert.Empty(t, convert.BuildSpawns(m, spawnCfg()))
}

func TestBuildSpawns_ConfiguredFallbacks(t *testing.T) {
	m := &divinepride.Monster{
		ID:     1869,
		DBName: "FLAME_SKULL",
		Spawns: []divinepride.Spawn{{MapName: "abbey02"}},
	}

	lines := convert.BuildSpawns(m, config.SpawnConfig{Amount: 3, RespawnDelayMs: 7000})
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Amount)
	assert.Equal(t, 7000, lines[0].DelayMs)
}

func TestBuildSpawns_ExplicitZeroRespawnKept(t *testing.T) {
	m := &divinepride.Monster{
		ID:     1002,
		DBName: "PORING",
		Spawns: []divinepride.Spawn{
			{MapName: "prt_fild08", Amount: flexInt(70), RespawnTime: flexInt(0)},
		},
	}

	lines := convert.BuildSpawns(m, spawnCfg())
	require.Len(t, lines, 1)
	assert.Equal(t, 0, lines[0].DelayMs)
}

func TestBuildSpawns_OneLinePerBlock(t *testing.T) {
	m := &divinepride.Monster{
		ID:     1002,
		DBName: "PORING",
		Spawns: []divinepride.Spawn{
			{MapName: "prt_fild08"},
			{MapName: "prt_fild09"},
		},
	}

	lines := convert.BuildSpawns(m, spawnCfg())
	require.Len(t, lines, 2)
	assert.Equal(t, "prt_fild08", lines[0].MapName)
	assert.Equal(t, "prt_fild09", lines[1].MapName)
}
