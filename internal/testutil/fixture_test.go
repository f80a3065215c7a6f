package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/xidgen/internal/xlsx"
)

const fixtureYAML = `description: Round-trip check.
sheets:
  - name: Catalog
    rows:
      - ["Header A", "Header \nB"]
      - ["XID", "42"]
      - ["", "only second"]
  - rows:
      - ["second sheet"]
`

func writeFixtureFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roundtrip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture(writeFixtureFile(t, fixtureYAML))
	require.NoError(t, err)

	assert.Equal(t, "roundtrip", f.Name)
	require.Len(t, f.Sheets, 2)
	assert.Equal(t, "Catalog", f.Sheets[0].Name)
	assert.Equal(t, "Header \nB", f.Sheets[0].Rows[0][1], "embedded newline survives YAML")
	assert.Empty(t, f.Sheets[1].Name, "second sheet name defaults later")
}

func TestWriteWorkbook_RoundTrip(t *testing.T) {
	f, err := LoadFixture(writeFixtureFile(t, fixtureYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), f.Name+".xlsx")
	require.NoError(t, f.WriteWorkbook(path))

	wb, err := xlsx.Open(path)
	require.NoError(t, err)

	// String cells go through the shared-string table, so the reader's
	// lookup path is exercised by every fixture.
	assert.True(t, wb.HasPart(xlsx.SharedStringsPart))

	rows, err := wb.Sheet(xlsx.Sheet1Part)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Header A", "Header \nB"},
		{"XID", "42"},
		{"", "only second"},
	}, rows)

	second, err := wb.Sheet(xlsx.Sheet2Part)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"second sheet"}}, second)
}

func TestLoadFixture_BadYAML(t *testing.T) {
	_, err := LoadFixture(writeFixtureFile(t, "sheets: [not: valid: yaml"))
	require.Error(t, err)
}
