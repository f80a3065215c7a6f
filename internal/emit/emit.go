// Package emit renders the sorted record lists into the generated Go
// source file.
package emit

import (
	"fmt"
	"strings"
	"time"

	"github.com/gpukit/xidgen/internal/catalog"
)

// SourceURL documents where the vendor catalog comes from; it is embedded
// in the generated header comment.
const SourceURL = "https://docs.nvidia.com/deploy/xid-errors/analyzing-xid-catalog.html"

// Generate renders the two data tables as Go source. The output is
// deterministic for fixed inputs; generatedAt is the only varying line and
// is passed in so callers (and tests) control it.
func Generate(entries []catalog.CatalogEntry, rules []catalog.NVLinkRule, generatedAt time.Time) string {
	var b strings.Builder

	timestamp := generatedAt.UTC().Format("2006-01-02T15:04:05") + "Z"
	b.WriteString("// Code generated by xidgen; DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// Generated at %s. Source: %s\n", timestamp, SourceURL)
	b.WriteString("\n")
	b.WriteString("package xid\n")
	b.WriteString("\n")

	b.WriteString("// catalogEntries mirrors NVIDIA's XID catalog (sheet: \"Catalog\").\n")
	b.WriteString("var catalogEntries = []catalogEntry{\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\t{Code: %d, Mnemonic: %s, Description: %s, ImmediateResolution: %s, InvestigatoryResolution: %s,},\n",
			e.Code, quote(e.Mnemonic), quote(e.Description), quote(e.ImmediateResolution), quote(e.InvestigatoryResolution))
	}
	b.WriteString("}\n")
	b.WriteString("\n")

	b.WriteString("// nvlinkRules captures the NVLink5-specific decode table (sheet: \"XID 144-150 Decode\").\n")
	b.WriteString("var nvlinkRules = []nvlinkRule{\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "\t{Xid: %d, Unit: %s, IntrinfoPatternV1: %s, IntrinfoPatternV2: %s, ErrorStatus: 0x%08x, Resolution: %s, Investigatory: %s, Severity: %s",
			r.Xid, quote(r.Unit), quote(r.IntrinfoPatternV1), quote(r.IntrinfoPatternV2), r.ErrorStatus, quote(r.Resolution), quote(r.Investigatory), quote(r.Severity))
		if r.Action2 != "" {
			fmt.Fprintf(&b, ", Action2: %s", quote(r.Action2))
		}
		if r.HwSw != "" {
			fmt.Fprintf(&b, ", HwSw: %s", quote(r.HwSw))
		}
		if r.LocalRemote != "" {
			fmt.Fprintf(&b, ", LocalRemote: %s", quote(r.LocalRemote))
		}
		b.WriteString("},\n")
	}
	b.WriteString("}\n")

	return b.String()
}

// quote escapes a value for embedding as a Go string literal. Only the
// characters the catalog text actually contains need handling: backslash,
// double quote, and newline.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
