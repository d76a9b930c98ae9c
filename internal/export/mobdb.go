// Package export persists converter output: the upserted mob_db YAML document
// and the append-only spawn and skill line files.
package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/athena-tools/mobgen/internal/convert"
)

// Header identifies the mob_db document type to the consuming engine.
type Header struct {
	Type    string `yaml:"Type"`
	Version int    `yaml:"Version"`
}

// MobDB is a full mob_db document: header plus the ordered entry list.
type MobDB struct {
	Header Header             `yaml:"Header"`
	Body   []convert.MobEntry `yaml:"Body"`
}

// NewMobDB returns an empty document with the expected header.
func NewMobDB() *MobDB {
	return &MobDB{
		Header: Header{Type: "MOB_DB", Version: 2},
	}
}

// LoadMobDB reads an existing mob_db document, or returns a fresh one when
// the file does not exist. A file that exists but cannot be parsed is an
// error: overwriting a hand-edited database the converter cannot read would
// lose data.
//
// Postcondition: returns a non-nil MobDB with a valid header, or an error.
func LoadMobDB(path string) (*MobDB, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewMobDB(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading mob database %s: %w", path, err)
	}

	var db MobDB
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parsing mob database %s: %w", path, err)
	}

	if db.Header.Type == "" {
		db.Header = NewMobDB().Header
	}
	return &db, nil
}

// Upsert inserts the entry, or replaces the existing entry with the same id
// in place. Entry order is otherwise preserved, so re-running the converter
// never reshuffles a database.
//
// Postcondition: exactly one entry with entry.ID exists in the body; returns
// true when an existing entry was replaced.
func (db *MobDB) Upsert(entry convert.MobEntry) bool {
	for i := range db.Body {
		if db.Body[i].ID == entry.ID {
			db.Body[i] = entry
			return true
		}
	}
	db.Body = append(db.Body, entry)
	return false
}

// SaveMobDB writes the document, creating parent directories as needed.
// The serialized form is validated by parsing it back before it touches the
// target path, so a marshalling bug can never corrupt the database.
//
// Precondition: db must be non-nil.
// Postcondition: path holds a parseable mob_db document, or an error is
// returned and the previous file content is untouched.
func SaveMobDB(path string, db *MobDB) error {
	data, err := yaml.Marshal(db)
	if err != nil {
		return fmt.Errorf("serialising mob database: %w", err)
	}

	// Validate output is loadable before writing.
	var check MobDB
	if err := yaml.Unmarshal(data, &check); err != nil {
		return fmt.Errorf("mob database failed validation: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing mob database %s: %w", path, err)
	}
	return nil
}

// ResetMobDB replaces the target with a fresh empty document.
func ResetMobDB(path string) error {
	return SaveMobDB(path, NewMobDB())
}
