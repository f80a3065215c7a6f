package xlsx

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/gpukit/xidgen/internal/errors"
)

// worksheetXML mirrors the sheetData section of a worksheet part. A cell
// with t="s" stores a decimal index into the shared-string table in its
// <v> node; any other cell stores its literal value there.
type worksheetXML struct {
	Rows []struct {
		Cells []struct {
			Type  string  `xml:"t,attr"`
			Value *string `xml:"v"`
		} `xml:"c"`
	} `xml:"sheetData>row"`
}

// Sheet parses the named worksheet part into a grid of cell strings.
// Rows and cells keep their document order; rows without cells are
// dropped. Row widths are not normalized, callers pad against their own
// header. A missing part or an unresolvable shared-string reference fails
// the whole read.
func (wb *Workbook) Sheet(part string) ([][]string, error) {
	data, ok := wb.parts[part]
	if !ok {
		return nil, errors.Inputf("missing worksheet part: %s", part)
	}
	var ws worksheetXML
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, errors.Wrap(err, "parsing "+part)
	}

	rows := make([][]string, 0, len(ws.Rows))
	for _, row := range ws.Rows {
		values := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			if c.Value == nil {
				values = append(values, "")
				continue
			}
			if c.Type == "s" {
				text, err := wb.lookupShared(*c.Value)
				if err != nil {
					return nil, errors.Schema(part, err.Error())
				}
				values = append(values, text)
				continue
			}
			values = append(values, *c.Value)
		}
		if len(values) > 0 {
			rows = append(rows, values)
		}
	}
	return rows, nil
}

func (wb *Workbook) lookupShared(ref string) (string, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil {
		return "", errors.Newf("invalid shared string reference %q", ref)
	}
	if idx < 0 || idx >= len(wb.shared) {
		return "", errors.Newf("shared string index %d out of range", idx)
	}
	return wb.shared[idx], nil
}
