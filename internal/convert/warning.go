// Package convert translates vendor monster records into rAthena mob_db
// entries, mob_skill_db directives, and spawn lines.
package convert

import "fmt"

// WarnKind classifies a recoverable conversion problem.
type WarnKind string

const (
	WarnElement        WarnKind = "element"
	WarnRace           WarnKind = "race"
	WarnSize           WarnKind = "size"
	WarnClass          WarnKind = "class"
	WarnSkillCondition WarnKind = "skill-condition"
	WarnSkillSendType  WarnKind = "skill-sendtype"
	WarnSkillField     WarnKind = "skill-field"
	WarnSkillMalformed WarnKind = "skill-malformed"
	WarnDropItem       WarnKind = "drop-item"
)

// Warning is an ephemeral diagnostic for the operator. Warnings never abort
// a run and are never persisted to the output artifacts.
type Warning struct {
	Kind      WarnKind
	MonsterID int
	Context   string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return fmt.Sprintf("monster %d: %s: %s", w.MonsterID, w.Kind, w.Context)
}

func warnf(kind WarnKind, monsterID int, format string, args ...any) Warning {
	return Warning{Kind: kind, MonsterID: monsterID, Context: fmt.Sprintf(format, args...)}
}
