package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gpukit/xidgen/internal/errors"
)

// NVLinkRule is one decode rule mapping (xid, unit, error status) to a
// diagnostic resolution. Action2, HwSw, and LocalRemote come from columns
// the vendor adds in newer catalog revisions; they hold the empty string
// when the column is absent, and empty fields never reach the emitted
// literal.
type NVLinkRule struct {
	Xid               int
	Unit              string
	IntrinfoPatternV1 string
	IntrinfoPatternV2 string
	ErrorStatus       uint32
	Resolution        string
	Investigatory     string
	Severity          string
	Action2           string
	HwSw              string
	LocalRemote       string
}

const nvlinkSheet = "sheet2"

const (
	colXid         = "Xid"
	colSubcode     = "Subcode V1(<R575)/V2(>=R575)\nV1(<R575): IntrInfo[9:5]\nV2(>=R575):IntrInfo[6:0]"
	colIntrinfoV1  = "(V1(<R575)) IntrInfo decode for Data Center Recovery Action \nIntrInfo (binary; \"-\" user decode)"
	colIntrinfoV2  = "(V2(>=R575)) IntrInfo decode for Data Center Recovery Action\nIntrInfo (binary; \"-\" user decode)"
	colErrorStatus = "Error Status (hex)"
	colResolution  = "Resolution Bucket \n(Data Center Recovery Action)"
	colAction2     = "Action 2"
	colSeverity    = "Severity (for items with '*' please see Customer User Guide tab)"
	colHwSw        = "HW/SW"
	colLocalRemote = "Local/Remote (for items with '*' please see Customer User Guide tab)"
)

// BuildRules converts the second worksheet's grid into NVLink decode
// rules, sorted ascending by (xid, unit, error status). Rows with an
// empty or non-numeric xid, an empty subcode, or an unparseable error
// status are dropped silently.
func BuildRules(rows [][]string) ([]NVLinkRule, error) {
	if len(rows) == 0 {
		return nil, errors.Schema(nvlinkSheet, "sheet has no header row")
	}
	h := newHeader(nvlinkSheet, rows[0])

	idxXid, err := h.index(colXid)
	if err != nil {
		return nil, err
	}
	idxSubcode, err := h.index(colSubcode)
	if err != nil {
		return nil, err
	}
	idxIntrV1, err := h.index(colIntrinfoV1)
	if err != nil {
		return nil, err
	}
	idxIntrV2, err := h.index(colIntrinfoV2)
	if err != nil {
		return nil, err
	}
	idxStatus, err := h.index(colErrorStatus)
	if err != nil {
		return nil, err
	}
	idxResolution, err := h.index(colResolution)
	if err != nil {
		return nil, err
	}
	idxInvestigatory, err := h.index(colInvestigatory)
	if err != nil {
		return nil, err
	}
	idxSeverity, err := h.index(colSeverity)
	if err != nil {
		return nil, err
	}
	idxAction2, hasAction2 := h.optional(colAction2)
	idxHwSw, hasHwSw := h.optional(colHwSw)
	idxLocalRemote, hasLocalRemote := h.optional(colLocalRemote)

	var rules []NVLinkRule
	for _, row := range rows[1:] {
		row = h.pad(row)
		xidStr := strings.TrimSpace(row[idxXid])
		subcode := strings.TrimSpace(row[idxSubcode])
		if !isDigits(xidStr) || subcode == "" {
			continue
		}
		xid, err := strconv.Atoi(xidStr)
		if err != nil {
			continue
		}
		status, ok := parseErrorStatus(row[idxStatus])
		if !ok {
			// Some rows carry placeholders like "N/A".
			continue
		}
		rule := NVLinkRule{
			Xid:               xid,
			Unit:              subcode,
			IntrinfoPatternV1: strings.TrimSpace(row[idxIntrV1]),
			IntrinfoPatternV2: strings.TrimSpace(row[idxIntrV2]),
			ErrorStatus:       status,
			Resolution:        strings.TrimSpace(row[idxResolution]),
			Investigatory:     strings.TrimSpace(row[idxInvestigatory]),
			Severity:          strings.TrimSpace(row[idxSeverity]),
		}
		if hasAction2 {
			rule.Action2 = strings.TrimSpace(row[idxAction2])
		}
		if hasHwSw {
			rule.HwSw = strings.TrimSpace(row[idxHwSw])
		}
		if hasLocalRemote {
			rule.LocalRemote = strings.TrimSpace(row[idxLocalRemote])
		}
		rules = append(rules, rule)
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Xid != rules[j].Xid {
			return rules[i].Xid < rules[j].Xid
		}
		if rules[i].Unit != rules[j].Unit {
			return rules[i].Unit < rules[j].Unit
		}
		return rules[i].ErrorStatus < rules[j].ErrorStatus
	})
	return rules, nil
}

// parseErrorStatus parses the hex error-status cell. A blank cell defaults
// to 0x0; the 0x prefix is optional and case does not matter.
func parseErrorStatus(s string) (uint32, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "0x0"
	}
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
