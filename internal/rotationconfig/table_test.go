package rotationconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidTable(t *testing.T) {
	doc := []byte(`
entries:
  - id: "148"
    password: "current-secret"
  - id: "147"
    password: "previous-secret"
`)
	table, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, table, 2)

	pw, ok := table.Resolve([]byte("147"))
	require.True(t, ok)
	assert.Equal(t, "previous-secret", string(pw))
}

func TestParseRejectsDelimiterInID(t *testing.T) {
	doc := []byte(`
entries:
  - id: "14*8"
    password: "secret"
`)
	_, err := Parse(doc)
	assert.Error(t, err)
}

func TestParseRejectsDelimiterInPassword(t *testing.T) {
	doc := []byte(`
entries:
  - id: "148"
    password: "se*cret"
`)
	_, err := Parse(doc)
	assert.Error(t, err)
}

func TestParseRejectsEmptyPassword(t *testing.T) {
	doc := []byte(`
entries:
  - id: "148"
    password: ""
`)
	_, err := Parse(doc)
	assert.Error(t, err)
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	doc := []byte(`
entries:
  - id: "148"
    password: "secret1"
  - id: "148"
    password: "secret2"
`)
	_, err := Parse(doc)
	assert.Error(t, err)
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := Parse([]byte(`entries: []`))
	assert.Error(t, err)
}

func TestCurrent(t *testing.T) {
	doc := []byte(`
entries:
  - id: "148"
    password: "current-secret"
  - id: "147"
    password: "previous-secret"
`)
	table, err := Parse(doc)
	require.NoError(t, err)

	id, pw, err := Current(table)
	require.NoError(t, err)
	assert.Equal(t, "148", string(id))
	assert.Equal(t, "current-secret", string(pw))
}
