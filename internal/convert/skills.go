package convert

import (
	"strconv"
	"strings"

	"github.com/athena-tools/mobgen/internal/divinepride"
)

// condMapping is one entry of the vendor condition → rAthena condition table.
type condMapping struct {
	Cond   string
	Target string
}

// knownConditions maps vendor trigger conditions to rAthena condition types
// and their cast targets. Adding a mapping is a one-line change.
var knownConditions = map[string]condMapping{
	"IF_HP":                {"myhpltmaxrate", "self"},
	"IF_MONSTERCOUNT":      {"monstersaround", "self"},
	"IF_ENEMYCOUNT":        {"enemycount", "enemy"},
	"IF_RUDEATTACK":        {"rudeattacked", "enemy"},
	"IF_RANGEATTACKED":     {"farerangeattacked", "enemy"},
	"IF_MAGICLOCKED":       {"magiclocked", "self"},
	"IF_GROUNDATTACKCHECK": {"groundattacked", "self"},
	"IF_SKILLUSE":          {"skillused", "enemy"},
	"IF_SLAVENUM":          {"slavereqgt", "self"},
	"IF_JOBCHECK":          {"job", "enemy"},
}

// knownSendTypes is the set of vendor send types the converter understands.
var knownSendTypes = map[string]bool{
	"SEND_EMOTICON": true,
}

// DefaultTarget is the cast target used when a skill has no mapped
// condition. An empty condition type means "always" to the consuming engine.
const DefaultTarget = "target"

// defaultSkillState is the AI state every generated directive fires in.
const defaultSkillState = "attack"

// SkillDirective is one translated mob_skill_db rule.
type SkillDirective struct {
	MonsterID  int
	State      string // "<Name>@<STATUS>"
	SkillState string
	SkillID    int
	Level      int
	Chance     int
	CastTime   int
	Delay      int
	Cancelable bool
	Target     string
	CondType   string
	CondValue  string
	Val1       string
	Val2       string
	Emotion    string
	Chat       string
	Sound      string
}

// Line renders the directive as a mob_skill_db CSV line.
//
// Postcondition: the result has exactly 19 comma-separated columns.
func (d SkillDirective) Line() string {
	cancelable := "no"
	if d.Cancelable {
		cancelable = "yes"
	}

	fields := []string{
		strconv.Itoa(d.MonsterID),
		d.State,
		d.SkillState,
		strconv.Itoa(d.SkillID),
		strconv.Itoa(d.Level),
		strconv.Itoa(d.Chance),
		strconv.Itoa(d.CastTime),
		strconv.Itoa(d.Delay),
		cancelable,
		d.Target,
		d.CondType,
		d.CondValue,
		d.Val1,
		d.Val2,
		"", // val3, unused by the vendor data
		"", // val4, unused by the vendor data
		d.Emotion,
		d.Chat,
		d.Sound,
	}
	return strings.Join(fields, ",")
}

// TranslateSkills converts the monster's raw skill list into skill-AI
// directives. Source ordering is preserved because it decides AI priority in
// the consuming engine; one source skill produces exactly one directive.
// Skills without a usable skill id are skipped with a warning. Unknown
// conditions and send types degrade to documented defaults with a warning.
//
// Precondition: m must be non-nil.
// Postcondition: len(directives) <= len(m.Skills); ordering matches m.Skills.
func TranslateSkills(m *divinepride.Monster) ([]SkillDirective, []Warning) {
	var (
		directives []SkillDirective
		warnings   []Warning
	)

	name := NormalizeName(m.DBName)

	for i, sk := range m.Skills {
		for field := range sk.Extra {
			warnings = append(warnings, warnf(WarnSkillField, m.ID,
				"skill %d: unrecognized field %q", i, field))
		}

		skillID := sk.SkillID.Int()
		if skillID <= 0 {
			warnings = append(warnings, warnf(WarnSkillMalformed, m.ID,
				"skill %d has no usable skill id, skipping", i))
			continue
		}

		status := strings.TrimSpace(sk.Status.String())
		if status == "" {
			status = "IDLE_ST"
		}

		level := sk.Level.Int()
		if level <= 0 {
			level = 1
		}
		chance := sk.Chance.Int()
		if chance <= 0 {
			chance = 100
		}

		cancelable := true
		if sk.Interruptable != nil {
			cancelable = *sk.Interruptable
		}

		condType, condValue, target, condWarn := mapCondition(
			m.ID, sk.Condition.String(), sk.ConditionValue.String())
		if condWarn != nil {
			warnings = append(warnings, *condWarn)
		}

		emotion, sendWarn := mapSendType(m.ID, sk.SendType.String(), sk.SendValue.String())
		if sendWarn != nil {
			warnings = append(warnings, *sendWarn)
		}

		directives = append(directives, SkillDirective{
			MonsterID:  m.ID,
			State:      name + "@" + status,
			SkillState: defaultSkillState,
			SkillID:    skillID,
			Level:      level,
			Chance:     chance,
			CastTime:   sk.CastTime.Int(),
			Delay:      sk.Delay.Int(),
			Cancelable: cancelable,
			Target:     target,
			CondType:   condType,
			CondValue:  condValue,
			Val1:       strings.TrimSpace(sk.Idx.String()),
			Val2:       strings.TrimSpace(sk.ChangeTo.String()),
			Emotion:    emotion,
		})
	}

	return directives, warnings
}

// mapCondition translates a vendor trigger condition into the rAthena
// (condType, condValue, target) triplet. An absent condition yields the
// unconditional form; an unknown one does the same plus a warning.
func mapCondition(monsterID int, cond, value string) (condType, condValue, target string, warn *Warning) {
	cond = strings.ToUpper(strings.TrimSpace(cond))
	if cond == "" {
		return "", "", "", nil
	}

	mapping, ok := knownConditions[cond]
	if !ok {
		w := warnf(WarnSkillCondition, monsterID,
			"unmapped condition %q, treating as always", cond)
		return "", "", DefaultTarget, &w
	}

	val := strings.TrimSpace(value)
	if cond == "IF_SLAVENUM" && val == "" {
		val = "1"
	}

	return mapping.Cond, val, mapping.Target, nil
}

// mapSendType translates a vendor send type into the emotion column.
// Only SEND_EMOTICON is understood; anything else warns and emits nothing.
func mapSendType(monsterID int, sendType, sendValue string) (emotion string, warn *Warning) {
	st := strings.ToUpper(strings.TrimSpace(sendType))
	if st == "" {
		return "", nil
	}

	if !knownSendTypes[st] {
		w := warnf(WarnSkillSendType, monsterID, "unmapped send type %q", st)
		return "", &w
	}

	emotion = strings.TrimSpace(sendValue)
	if emotion == "" {
		emotion = "0"
	}
	return emotion, nil
}
