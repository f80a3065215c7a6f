package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gpukit/xidgen/internal/errors"
)

// CatalogEntry is one row of the master XID-to-description mapping. Field
// names match the struct the generated table initializes.
type CatalogEntry struct {
	Code                    int
	Mnemonic                string
	Description             string
	ImmediateResolution     string
	InvestigatoryResolution string
}

const catalogSheet = "sheet1"

// Column names as they appear in the vendor workbook, embedded newlines
// included.
const (
	colEntryType     = "Type \n(XID)"
	colCode          = "Code"
	colMnemonic      = "Mnemonic"
	colDescription   = "Description"
	colImmediate     = "Resolution Bucket \n(Immediate Action)"
	colInvestigatory = "Resolution Bucket \n(Investigatory Action)"
)

// BuildEntries converts the first worksheet's grid into catalog entries,
// sorted ascending by code. Rows that are not typed "XID" or whose code is
// not a plain digit string are dropped silently.
func BuildEntries(rows [][]string) ([]CatalogEntry, error) {
	if len(rows) == 0 {
		return nil, errors.Schema(catalogSheet, "sheet has no header row")
	}
	h := newHeader(catalogSheet, rows[0])

	idxType, err := h.index(colEntryType)
	if err != nil {
		return nil, err
	}
	idxCode, err := h.index(colCode)
	if err != nil {
		return nil, err
	}
	idxMnemonic, err := h.index(colMnemonic)
	if err != nil {
		return nil, err
	}
	idxDesc, err := h.index(colDescription)
	if err != nil {
		return nil, err
	}
	idxImm, err := h.index(colImmediate)
	if err != nil {
		return nil, err
	}
	idxInv, err := h.index(colInvestigatory)
	if err != nil {
		return nil, err
	}

	var entries []CatalogEntry
	for _, row := range rows[1:] {
		row = h.pad(row)
		if row[idxType] != "XID" {
			continue
		}
		codeStr := row[idxCode]
		if !isDigits(codeStr) {
			continue
		}
		code, err := strconv.Atoi(codeStr)
		if err != nil {
			continue
		}
		entries = append(entries, CatalogEntry{
			Code:                    code,
			Mnemonic:                strings.TrimSpace(row[idxMnemonic]),
			Description:             strings.TrimSpace(row[idxDesc]),
			ImmediateResolution:     strings.TrimSpace(row[idxImm]),
			InvestigatoryResolution: strings.TrimSpace(row[idxInv]),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries, nil
}
