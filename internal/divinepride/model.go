package divinepride

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt is an int that unmarshals from a JSON number, a numeric string, or
// null. The vendor API is inconsistent about numeric field types across
// servers, so every skill and drop numeric goes through this type. Invalid or
// missing values decode to zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	s := strings.Trim(string(data), `"`)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the plain int value.
func (f FlexInt) Int() int { return int(f) }

// FlexString is a string that unmarshals from a JSON string, number, or null.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	*f = FlexString(string(data))
	return nil
}

// String returns the plain string value.
func (f FlexString) String() string { return string(f) }

// Stats is the vendor stat block of a monster record.
type Stats struct {
	Level          int    `json:"level"`
	Health         int    `json:"health"`
	SP             int    `json:"sp"`
	BaseExperience int    `json:"baseExperience"`
	JobExperience  int    `json:"jobExperience"`
	Atk1           int    `json:"atk1"`
	Atk2           int    `json:"atk2"`
	Defense        int    `json:"defense"`
	MagicDefense   int    `json:"magicDefense"`
	Res            int    `json:"res"`
	Mres           int    `json:"mres"`
	Str            int    `json:"str"`
	Agi            int    `json:"agi"`
	Vit            int    `json:"vit"`
	Int            int    `json:"int"`
	Dex            int    `json:"dex"`
	Luk            int    `json:"luk"`
	AttackRange    int    `json:"attackRange"`
	SkillRange     int    `json:"skillRange"`
	AggroRange     int    `json:"aggroRange"`
	Scale          int    `json:"scale"`
	Race           int    `json:"race"`
	// Element packs element level and element id as level*20 + element.
	Element       int     `json:"element"`
	MovementSpeed int     `json:"movementSpeed"`
	AttackSpeed   int     `json:"attackSpeed"`
	AttackedSpeed int     `json:"attackedSpeed"`
	MVP           FlexInt `json:"mvp"`
	AI            string  `json:"ai"`
	Class         FlexInt `json:"class"`
}

// Skill is one vendor skill block.
type Skill struct {
	Idx            FlexString `json:"idx"`
	SkillID        FlexInt    `json:"skillId"`
	Status         FlexString `json:"status"`
	Level          FlexInt    `json:"level"`
	Chance         FlexInt    `json:"chance"`
	CastTime       FlexInt    `json:"casttime"`
	Delay          FlexInt    `json:"delay"`
	Interruptable  *bool      `json:"interruptable"`
	ChangeTo       FlexString `json:"changeTo"`
	Condition      FlexString `json:"condition"`
	ConditionValue FlexString `json:"conditionValue"`
	SendType       FlexString `json:"sendType"`
	SendValue      FlexString `json:"sendValue"`

	// Extra catches fields the converter does not recognize, for typo
	// warnings. Populated by UnmarshalJSON.
	Extra map[string]json.RawMessage `json:"-"`
}

// knownSkillFields are the vendor skill block fields the converter consumes.
var knownSkillFields = map[string]bool{
	"idx": true, "skillId": true, "status": true, "level": true,
	"chance": true, "casttime": true, "delay": true, "interruptable": true,
	"changeTo": true, "condition": true, "conditionValue": true,
	"sendType": true, "sendValue": true,
}

// UnmarshalJSON decodes a skill block and records unrecognized fields in Extra.
func (s *Skill) UnmarshalJSON(data []byte) error {
	type alias Skill
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k := range raw {
		if !knownSkillFields[k] {
			if a.Extra == nil {
				a.Extra = make(map[string]json.RawMessage)
			}
			a.Extra[k] = raw[k]
		}
	}

	*s = Skill(a)
	return nil
}

// Drop is one vendor drop or MVP-drop entry.
type Drop struct {
	ItemID         FlexInt `json:"itemId"`
	Chance         FlexInt `json:"chance"`
	StealProtected bool    `json:"stealProtected"`
}

// Spawn is one vendor spawn block. Amount and RespawnTime are pointers so an
// absent field can be told apart from an explicit zero (instant respawn).
type Spawn struct {
	MapName     string   `json:"mapname"`
	Amount      *FlexInt `json:"amount"`
	RespawnTime *FlexInt `json:"respawnTime"`
}

// Monster is the raw vendor monster record. Immutable once fetched.
type Monster struct {
	ID       int     `json:"id"`
	DBName   string  `json:"dbname"`
	Sprite   string  `json:"sprite"`
	Stats    Stats   `json:"stats"`
	Skills   []Skill `json:"skill"`
	Drops    []Drop  `json:"drops"`
	MVPDrops []Drop  `json:"mvpdrops"`
	Spawns   []Spawn `json:"spawn"`
}

// IsMVP reports whether the record is flagged MVP-tier.
func (m *Monster) IsMVP() bool {
	return m.Stats.MVP.Int() == 1
}
