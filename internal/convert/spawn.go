package convert

import (
	"fmt"

	"github.com/athena-tools/mobgen/internal/config"
	"github.com/athena-tools/mobgen/internal/divinepride"
)

// SpawnLine is one rAthena spawn record.
type SpawnLine struct {
	MapName   string
	X, Y      int
	Name      string
	MonsterID int
	Amount    int
	DelayMs   int
}

// Line renders the spawn in rAthena script syntax. The tab separators are
// required by the consuming script engine.
func (s SpawnLine) Line() string {
	return fmt.Sprintf("%s,%d,%d\tmonster\t%s\t%d,%d,%d",
		s.MapName, s.X, s.Y, s.Name, s.MonsterID, s.Amount, s.DelayMs)
}

// BuildSpawns derives spawn lines from the monster's vendor spawn blocks.
// Pure formatting: no network or file access. A monster without spawn blocks
// yields no lines. Configured fallbacks fill in amount and respawn delay when
// a block omits them; the vendor never provides coordinates, so x and y are
// always zero.
//
// Precondition: m must be non-nil.
// Postcondition: one SpawnLine per vendor spawn block, in source order.
func BuildSpawns(m *divinepride.Monster, cfg config.SpawnConfig) []SpawnLine {
	if len(m.Spawns) == 0 {
		return nil
	}

	name := NormalizeName(m.DBName)

	lines := make([]SpawnLine, 0, len(m.Spawns))
	for _, sp := range m.Spawns {
		amount := cfg.Amount
		if sp.Amount != nil && sp.Amount.Int() > 0 {
			amount = sp.Amount.Int()
		}
		delay := cfg.RespawnDelayMs
		if sp.RespawnTime != nil {
			delay = positive(sp.RespawnTime.Int())
		}

		lines = append(lines, SpawnLine{
			MapName:   sp.MapName,
			Name:      name,
			MonsterID: m.ID,
			Amount:    amount,
			DelayMs:   delay,
		})
	}

	return lines
}
