// Package xlsx reads the slice of the SpreadsheetML container format the
// catalog generator needs: the shared-string table and individual worksheet
// parts addressed by their fixed archive paths.
package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"io"

	"github.com/gpukit/xidgen/internal/errors"
)

// Archive part names. The catalog workbook keeps its sheets at fixed paths,
// so parts are addressed directly instead of resolving workbook.xml
// relationships.
const (
	SharedStringsPart = "xl/sharedStrings.xml"
	Sheet1Part        = "xl/worksheets/sheet1.xml"
	Sheet2Part        = "xl/worksheets/sheet2.xml"
)

// Workbook holds the raw parts of an opened spreadsheet archive together
// with its resolved shared-string table.
type Workbook struct {
	parts  map[string][]byte
	shared []string
}

// sstXML mirrors xl/sharedStrings.xml. A string item is either a plain
// <t> node or a sequence of rich-text runs <r><t>; the item's value is the
// concatenation of all its text nodes.
type sstXML struct {
	Items []struct {
		T    string `xml:"t"`
		Runs []struct {
			T string `xml:"t"`
		} `xml:"r"`
	} `xml:"si"`
}

// Open reads the archive at path into memory and resolves the shared-string
// table. A missing xl/sharedStrings.xml part is valid and yields an empty
// table.
func Open(path string) (*Workbook, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(err, "not a readable spreadsheet archive")
	}
	defer zr.Close()

	wb := &Workbook{parts: make(map[string][]byte, len(zr.File))}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrap(err, "reading archive part "+f.Name)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrap(err, "reading archive part "+f.Name)
		}
		wb.parts[f.Name] = data
	}

	if err := wb.loadSharedStrings(); err != nil {
		return nil, err
	}
	return wb, nil
}

func (wb *Workbook) loadSharedStrings() error {
	data, ok := wb.parts[SharedStringsPart]
	if !ok {
		return nil
	}
	var sst sstXML
	if err := xml.Unmarshal(data, &sst); err != nil {
		return errors.Wrap(err, "parsing "+SharedStringsPart)
	}
	wb.shared = make([]string, 0, len(sst.Items))
	for _, si := range sst.Items {
		text := si.T
		for _, run := range si.Runs {
			text += run.T
		}
		wb.shared = append(wb.shared, text)
	}
	return nil
}

// SharedStrings returns the resolved shared-string table.
func (wb *Workbook) SharedStrings() []string {
	return wb.shared
}

// HasPart reports whether the archive contains the named part.
func (wb *Workbook) HasPart(name string) bool {
	_, ok := wb.parts[name]
	return ok
}
