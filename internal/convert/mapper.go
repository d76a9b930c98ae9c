package convert

// Vendor code → rAthena name tables. Each table is plain data with one
// documented default, so adding a mapping is a one-line change.

// DefaultElement is used for vendor element codes outside the table.
const DefaultElement = "Neutral"

var elementNames = map[int]string{
	0: "Neutral",
	1: "Water",
	2: "Earth",
	3: "Fire",
	4: "Wind",
	5: "Poison",
	6: "Holy",
	7: "Dark",
	8: "Ghost",
	9: "Undead",
}

// DefaultRace is used for vendor race codes outside the table.
const DefaultRace = "Formless"

var raceNames = map[int]string{
	0: "Formless",
	1: "Undead",
	2: "Brute",
	3: "Plant",
	4: "Insect",
	5: "Fish",
	6: "Demon",
	7: "DemiHuman",
	8: "Angel",
	9: "Dragon",
}

// DefaultSize is used for vendor size codes outside the table.
const DefaultSize = "Medium"

var sizeNames = map[int]string{
	0: "Small",
	1: "Medium",
	2: "Large",
}

// DefaultClass is used for vendor class codes outside the table.
const DefaultClass = "Normal"

var classNames = map[int]string{
	0: "Normal",
	1: "Boss",
	2: "Boss",
	3: "Guardian",
	4: "Normal",
	5: "Guardian",
}

// ElementName maps a vendor element id to its rAthena name.
// Unknown ids map to DefaultElement with ok=false.
func ElementName(id int) (string, bool) {
	name, ok := elementNames[id]
	if !ok {
		return DefaultElement, false
	}
	return name, true
}

// RaceName maps a vendor race id to its rAthena name.
// Unknown ids map to DefaultRace with ok=false.
func RaceName(id int) (string, bool) {
	name, ok := raceNames[id]
	if !ok {
		return DefaultRace, false
	}
	return name, true
}

// SizeName maps a vendor size id to its rAthena name.
// Unknown ids map to DefaultSize with ok=false.
func SizeName(id int) (string, bool) {
	name, ok := sizeNames[id]
	if !ok {
		return DefaultSize, false
	}
	return name, true
}

// ClassName maps a vendor class id to its rAthena name. The vendor
// distinguishes more tiers than rAthena, so several ids collapse onto the
// same name. Unknown ids map to DefaultClass with ok=false.
func ClassName(id int) (string, bool) {
	name, ok := classNames[id]
	if !ok {
		return DefaultClass, false
	}
	return name, true
}
