package xlsx

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainNS = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// writeArchive builds a zip archive from raw part bodies. Raw XML keeps
// full control over the container: which parts exist, shared-string
// references, cells without values.
func writeArchive(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "book.xlsx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestOpen_SharedStrings(t *testing.T) {
	path := writeArchive(t, map[string]string{
		SharedStringsPart: `<sst xmlns="` + mainNS + `">` +
			`<si><t>Hello</t></si>` +
			`<si><r><t>Rich</t></r><r><t> text</t></r></si>` +
			`</sst>`,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "Rich text"}, wb.SharedStrings())
}

func TestOpen_MissingSharedStringsIsValid(t *testing.T) {
	path := writeArchive(t, map[string]string{
		Sheet1Part: `<worksheet xmlns="` + mainNS + `"><sheetData/></worksheet>`,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, wb.SharedStrings())
	assert.True(t, wb.HasPart(Sheet1Part))
	assert.False(t, wb.HasPart(SharedStringsPart))
}

func TestOpen_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip"), 0644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a readable spreadsheet archive")
}

func TestSheet_ResolvesSharedAndLiteralCells(t *testing.T) {
	path := writeArchive(t, map[string]string{
		SharedStringsPart: `<sst xmlns="` + mainNS + `">` +
			`<si><t>Code</t></si><si><t>XID</t></si>` +
			`</sst>`,
		Sheet1Part: `<worksheet xmlns="` + mainNS + `"><sheetData>` +
			`<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c></row>` +
			`<row r="2"><c r="A2"><v>79</v></c><c r="B2"/></row>` +
			`</sheetData></worksheet>`,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	rows, err := wb.Sheet(Sheet1Part)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Code", "XID"},
		{"79", ""},
	}, rows)
}

func TestSheet_CellWithoutValueIsEmpty(t *testing.T) {
	path := writeArchive(t, map[string]string{
		Sheet1Part: `<worksheet xmlns="` + mainNS + `"><sheetData>` +
			`<row r="1"><c r="A1" t="s"/><c r="B1"><v>1</v></c></row>` +
			`</sheetData></worksheet>`,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	rows, err := wb.Sheet(Sheet1Part)
	require.NoError(t, err)

	// A shared-string cell with no <v> resolves to "" rather than failing.
	assert.Equal(t, [][]string{{"", "1"}}, rows)
}

func TestSheet_RowsWithoutCellsAreSkipped(t *testing.T) {
	path := writeArchive(t, map[string]string{
		Sheet1Part: `<worksheet xmlns="` + mainNS + `"><sheetData>` +
			`<row r="1"><c r="A1"><v>first</v></c></row>` +
			`<row r="2"/>` +
			`<row r="3"><c r="A3"><v>third</v></c></row>` +
			`</sheetData></worksheet>`,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	rows, err := wb.Sheet(Sheet1Part)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"first"}, {"third"}}, rows)
}

func TestSheet_MissingPart(t *testing.T) {
	path := writeArchive(t, map[string]string{
		Sheet1Part: `<worksheet xmlns="` + mainNS + `"><sheetData/></worksheet>`,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	_, err = wb.Sheet(Sheet2Part)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing worksheet part")
}

func TestSheet_SharedReferenceOutOfRange(t *testing.T) {
	path := writeArchive(t, map[string]string{
		SharedStringsPart: `<sst xmlns="` + mainNS + `"><si><t>only</t></si></sst>`,
		Sheet1Part: `<worksheet xmlns="` + mainNS + `"><sheetData>` +
			`<row r="1"><c r="A1" t="s"><v>5</v></c></row>` +
			`</sheetData></worksheet>`,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	_, err = wb.Sheet(Sheet1Part)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestSheet_SharedReferenceNotNumeric(t *testing.T) {
	path := writeArchive(t, map[string]string{
		SharedStringsPart: `<sst xmlns="` + mainNS + `"><si><t>only</t></si></sst>`,
		Sheet1Part: `<worksheet xmlns="` + mainNS + `"><sheetData>` +
			`<row r="1"><c r="A1" t="s"><v>abc</v></c></row>` +
			`</sheetData></worksheet>`,
	})

	wb, err := Open(path)
	require.NoError(t, err)
	_, err = wb.Sheet(Sheet1Part)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid shared string reference")
}
