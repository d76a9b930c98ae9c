package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/athena-tools/mobgen/internal/divinepride"
	"github.com/athena-tools/mobgen/internal/itemdb"
)

// Modes holds the mob_db mode flags this converter emits.
type Modes struct {
	Mvp bool `yaml:"Mvp"`
}

// DropEntry is one resolved drop in a mob_db entry.
type DropEntry struct {
	Item           string `yaml:"Item"`
	Rate           int    `yaml:"Rate"`
	StealProtected bool   `yaml:"StealProtected,omitempty"`
}

// MobEntry is one rAthena mob_db Body entry. Field declaration order fixes
// the YAML key order, keeping re-serialization deterministic across runs.
type MobEntry struct {
	ID                 int         `yaml:"Id"`
	AegisName          string      `yaml:"AegisName"`
	Name               string      `yaml:"Name"`
	Level              int         `yaml:"Level"`
	Hp                 int         `yaml:"Hp"`
	Sp                 int         `yaml:"Sp"`
	BaseExp            int         `yaml:"BaseExp"`
	JobExp             int         `yaml:"JobExp"`
	Attack             int         `yaml:"Attack"`
	Attack2            int         `yaml:"Attack2"`
	Defense            int         `yaml:"Defense"`
	MagicDefense       int         `yaml:"MagicDefense"`
	Resistance         int         `yaml:"Resistance"`
	MagicResistance    int         `yaml:"MagicResistance"`
	Str                int         `yaml:"Str"`
	Agi                int         `yaml:"Agi"`
	Vit                int         `yaml:"Vit"`
	Int                int         `yaml:"Int"`
	Dex                int         `yaml:"Dex"`
	Luk                int         `yaml:"Luk"`
	AttackRange        int         `yaml:"AttackRange"`
	SkillRange         int         `yaml:"SkillRange"`
	ChaseRange         int         `yaml:"ChaseRange"`
	Size               string      `yaml:"Size"`
	Race               string      `yaml:"Race"`
	Element            string      `yaml:"Element"`
	ElementLevel       int         `yaml:"ElementLevel"`
	WalkSpeed          int         `yaml:"WalkSpeed"`
	AttackDelay        int         `yaml:"AttackDelay"`
	AttackMotion       int         `yaml:"AttackMotion"`
	ClientAttackMotion int         `yaml:"ClientAttackMotion"`
	DamageMotion       int         `yaml:"DamageMotion"`
	DamageTaken        int         `yaml:"DamageTaken"`
	Ai                 int         `yaml:"Ai"`
	Class              string      `yaml:"Class"`
	Modes              *Modes      `yaml:"Modes,omitempty"`
	MvpDrops           []DropEntry `yaml:"MvpDrops,omitempty"`
	Drops              []DropEntry `yaml:"Drops,omitempty"`
}

// defaultAI is assumed when the vendor record carries no AI type.
const defaultAI = "MONSTER_TYPE_21"

// nonMVPDamageTaken is the DamageTaken value for regular monsters.
const nonMVPDamageTaken = 100

// BuildEntry converts one fetched monster record into a mob_db entry,
// resolving drops against the item index. MVP-tier monsters get the
// configured mvpDamageTaken override and their MVP drop section.
//
// Precondition: m and idx must be non-nil; m.ID must be positive.
// Postcondition: returns a complete entry plus warnings for every field that
// fell back to a default and every drop that could not be resolved. Never
// fails: unknown vendor codes degrade to documented defaults.
func BuildEntry(m *divinepride.Monster, idx *itemdb.Index, mvpDamageTaken int) (MobEntry, []Warning) {
	var warnings []Warning
	st := m.Stats

	aegis := m.Sprite
	if aegis == "" {
		aegis = fmt.Sprintf("MOB_%d", m.ID)
	}

	elemID, elemLevel := splitElement(st.Element)
	element, ok := ElementName(elemID)
	if !ok {
		warnings = append(warnings, warnf(WarnElement, m.ID,
			"unknown element code %d, using %s", elemID, DefaultElement))
	}
	race, ok := RaceName(positive(st.Race))
	if !ok {
		warnings = append(warnings, warnf(WarnRace, m.ID,
			"unknown race code %d, using %s", st.Race, DefaultRace))
	}
	size, ok := SizeName(positive(st.Scale))
	if !ok {
		warnings = append(warnings, warnf(WarnSize, m.ID,
			"unknown size code %d, using %s", st.Scale, DefaultSize))
	}
	class, ok := ClassName(st.Class.Int())
	if !ok {
		warnings = append(warnings, warnf(WarnClass, m.ID,
			"unknown class code %d, using %s", st.Class.Int(), DefaultClass))
	}

	entry := MobEntry{
		ID:        m.ID,
		AegisName: aegis,
		Name:      NormalizeName(m.DBName),

		Level: valueFallback(st.Level, 250),
		Hp:    valueFallback(st.Health, 2_500_000),
		Sp:    valueFallback(st.SP, 10_000),

		BaseExp: valueFallback(st.BaseExperience, 3_000_000),
		JobExp:  valueFallback(st.JobExperience, 3_000_000),

		Attack:  valueFallback(st.Atk1, 500),
		Attack2: valueFallback(st.Atk2, 300),

		Defense:         valueFallback(st.Defense, 1000),
		MagicDefense:    valueFallback(st.MagicDefense, 600),
		Resistance:      valueFallback(st.Res, 500),
		MagicResistance: valueFallback(st.Mres, 300),

		Str: valueFallback(st.Str, 200),
		Agi: valueFallback(st.Agi, 200),
		Vit: valueFallback(st.Vit, 200),
		Int: valueFallback(st.Int, 200),
		Dex: valueFallback(st.Dex, 200),
		Luk: valueFallback(st.Luk, 200),

		AttackRange: valueFallback(st.AttackRange, 1),
		SkillRange:  valueFallback(st.SkillRange, 10),
		ChaseRange:  valueFallback(st.AggroRange, 12),

		Size:         size,
		Race:         race,
		Element:      element,
		ElementLevel: elemLevel,

		WalkSpeed:          valueFallback(st.MovementSpeed, 100),
		AttackDelay:        valueFallback(st.AttackSpeed, 500),
		AttackMotion:       valueFallback(st.AttackedSpeed, 700),
		ClientAttackMotion: valueFallback(st.AttackedSpeed, 700),
		DamageMotion:       valueFallback(st.AttackedSpeed, 700),

		DamageTaken: nonMVPDamageTaken,
		Ai:          aiType(st.AI),
		Class:       class,
	}

	if m.IsMVP() {
		entry.DamageTaken = mvpDamageTaken
		entry.Modes = &Modes{Mvp: true}

		mvpDrops, mvpWarnings := ResolveDrops(m.ID, m.MVPDrops, idx)
		entry.MvpDrops = mvpDrops
		warnings = append(warnings, mvpWarnings...)
	}

	drops, dropWarnings := ResolveDrops(m.ID, m.Drops, idx)
	entry.Drops = drops
	warnings = append(warnings, dropWarnings...)

	return entry, warnings
}

// splitElement decomposes the vendor's packed element value. The vendor
// encodes element level and element id together as level*20 + element.
// Element level floors at 1.
func splitElement(raw int) (id, level int) {
	if raw == 0 {
		return 0, 1
	}
	id = positive(raw) % 20
	level = positive(raw) / 20
	if level == 0 {
		level = 1
	}
	return id, level
}

// aiType extracts the numeric AI type from a vendor string such as
// "MONSTER_TYPE_21".
func aiType(ai string) int {
	if ai == "" {
		ai = defaultAI
	}
	parts := strings.Split(ai, "_")
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return positive(n)
}
