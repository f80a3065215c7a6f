// Package testutil provides declarative workbook fixtures for tests.
//
// A fixture is a YAML document listing sheets and their cell rows. Tests
// load a fixture and render it into a real .xlsx archive, so the reader is
// exercised against files an actual spreadsheet writer produces, shared
// string table included.
//
// Example usage in a test:
//
//	path := testutil.MustWorkbook(t, "testdata/catalog_basic.yaml")
//	wb, err := xlsx.Open(path)
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Fixture describes a workbook to synthesize for a test.
type Fixture struct {
	// Name is the fixture name (derived from filename).
	Name string `yaml:"-"`

	// Description provides optional documentation.
	Description string `yaml:"description,omitempty"`

	// Sheets lists the worksheets in order. The first sheet lands in
	// xl/worksheets/sheet1.xml, the second in sheet2.xml, and so on.
	Sheets []SheetFixture `yaml:"sheets"`
}

// SheetFixture is one worksheet's cell grid.
type SheetFixture struct {
	// Name is the sheet tab name. Defaults to SheetN when empty.
	Name string `yaml:"name,omitempty"`

	// Rows holds cell text in row-major order. YAML block scalars keep
	// embedded newlines, which the catalog headers rely on.
	Rows [][]string `yaml:"rows"`
}

// LoadFixture loads a single fixture from a YAML file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}

	f.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
	return &f, nil
}

// WriteWorkbook renders the fixture as an xlsx archive at path.
func (f *Fixture) WriteWorkbook(path string) error {
	wb := excelize.NewFile()
	defer wb.Close()

	for i, sheet := range f.Sheets {
		name := sheet.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		if i == 0 {
			if name != "Sheet1" {
				if err := wb.SetSheetName("Sheet1", name); err != nil {
					return err
				}
			}
		} else {
			if _, err := wb.NewSheet(name); err != nil {
				return err
			}
		}
		// Empty cells are written too: the sheet parser consumes cells
		// in document order, so a skipped blank would shift every
		// column after it.
		for r, row := range sheet.Rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				if err := wb.SetCellValue(name, cell, value); err != nil {
					return err
				}
			}
		}
	}

	return wb.SaveAs(path)
}

// MustWorkbook renders the fixture at fixturePath into a temp directory and
// returns the workbook path, failing the test on any error.
func MustWorkbook(t *testing.T, fixturePath string) string {
	t.Helper()

	f, err := LoadFixture(fixturePath)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), f.Name+".xlsx")
	if err := f.WriteWorkbook(path); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return path
}
