// Package rotationconfig loads a password-rotation table from a YAML file
// into a sealcore.PasswordTable. The on-disk shape is deliberately small: a
// flat list of id/password entries, the current generation's id first.
package rotationconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"ironseal/internal/sealcore"
)

// Entry is one row of the on-disk rotation table.
type Entry struct {
	ID       string `yaml:"id"`
	Password string `yaml:"password"`
}

// File is the top-level document shape: an ordered list of entries.
// Entries[0] is treated as the current generation by callers that need to
// pick one id to seal new tokens with; every entry is a candidate when
// unsealing.
type File struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads and parses a rotation table file at path and converts it to a
// sealcore.PasswordTable, in file order. An id or password containing the
// wire delimiter byte is rejected outright, since it could never round-trip
// through a sealed token.
func Load(path string) (sealcore.PasswordTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rotationconfig: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a rotation table document already in memory.
func Parse(data []byte) (sealcore.PasswordTable, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("rotationconfig: parsing rotation table: %w", err)
	}
	if len(f.Entries) == 0 {
		return nil, fmt.Errorf("rotationconfig: rotation table has no entries")
	}

	table := make(sealcore.PasswordTable, 0, len(f.Entries))
	seen := make(map[string]bool, len(f.Entries))
	for i, e := range f.Entries {
		if e.Password == "" {
			return nil, fmt.Errorf("rotationconfig: entry %d (id %q) has an empty password", i, e.ID)
		}
		if strings.ContainsRune(e.ID, '*') || strings.ContainsRune(e.Password, '*') {
			return nil, fmt.Errorf("rotationconfig: entry %d (id %q) contains the wire delimiter '*'", i, e.ID)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("rotationconfig: duplicate id %q at entry %d", e.ID, i)
		}
		seen[e.ID] = true
		table = append(table, sealcore.PasswordEntry{ID: []byte(e.ID), Password: []byte(e.Password)})
	}
	return table, nil
}

// Current returns the id and password of the first entry, the one new
// tokens should be sealed under.
func Current(table sealcore.PasswordTable) (id, password []byte, err error) {
	if len(table) == 0 {
		return nil, nil, fmt.Errorf("rotationconfig: empty rotation table has no current entry")
	}
	return table[0].ID, table[0].Password, nil
}
