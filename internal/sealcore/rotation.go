package sealcore

import "bytes"

// Resolve does a first-match lookup of id in the table, mirroring the
// source's linear O(n·id_len) scan (§4.7, §9 design note: tables are small,
// hash-indexing isn't warranted, and duplicate ids must resolve to the
// first occurrence). It returns the matching password and true, or nil and
// false when no entry's id equals id byte-for-byte.
func (t PasswordTable) Resolve(id []byte) ([]byte, bool) {
	for _, entry := range t {
		if bytes.Equal(entry.ID, id) {
			return entry.Password, true
		}
	}
	return nil, false
}

// resolvePassword implements the unseal-time password selection of §4.6
// steps 3-4: an empty id with no fallback password is an error; a
// non-matching id with no fallback password is an error; otherwise a table
// match wins over the fallback, and the fallback otherwise.
func resolvePassword(table PasswordTable, id, fallback []byte) ([]byte, *Error) {
	if len(id) == 0 && len(fallback) == 0 {
		return nil, newErr(PasswordRotationError, "resolvePassword", "token has no password id and no fallback password supplied")
	}
	if len(table) > 0 {
		if pw, ok := table.Resolve(id); ok {
			return pw, nil
		}
	}
	if len(fallback) == 0 {
		return nil, newErr(PasswordRotationError, "resolvePassword", "no password for id %q and no fallback password supplied", id)
	}
	return fallback, nil
}
