// Package dumputil provides output helpers for cssdump debug tool.
// It operates on *css.Stylesheet and produces parse trees, property reports,
// flip differences and SQLite databases with parsed rules.
package dumputil

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"r2/css"
	"r2/utils/debug"
)

// DumpTreeTxt writes parsed stylesheet tree to <stem>-tree.txt.
func DumpTreeTxt(sheet *css.Stylesheet, inPath, outDir string, overwrite bool) error {
	return WriteOutput(inPath, outDir, "-tree.txt", []byte(sheet.Dump()), overwrite)
}

// DumpPropertiesTxt writes property usage report to <stem>-properties.txt.
func DumpPropertiesTxt(sheet *css.Stylesheet, inPath, outDir string, overwrite bool) error {
	report, count := dumpProperties(sheet)
	if err := WriteOutput(inPath, outDir, "-properties.txt", []byte(report), overwrite); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "properties: wrote %d distinct propert(ies) into output\n", count)
	return nil
}

// PropertyUsage tracks where a particular property is declared.
type PropertyUsage struct {
	Count     int
	Selectors []string
	// Flipped is set when built-in flip renames property or may change its
	// value.
	Flipped bool
}

// CollectProperties scans all rules and groups declarations by property.
func CollectProperties(sheet *css.Stylesheet) map[string]*PropertyUsage {
	flipped := make(map[string]bool)
	for _, p := range css.FlippedProperties() {
		flipped[p] = true
	}

	usage := make(map[string]*PropertyUsage)
	for _, r := range sheet.Rules {
		for _, d := range r.Declarations {
			u := usage[d.Property]
			if u == nil {
				u = &PropertyUsage{Flipped: flipped[d.Property]}
				usage[d.Property] = u
			}
			u.Count++
			if !slices.Contains(u.Selectors, r.Selector) {
				u.Selectors = append(u.Selectors, r.Selector)
			}
		}
	}
	return usage
}

func dumpProperties(sheet *css.Stylesheet) (string, int) {
	usage := CollectProperties(sheet)

	tw := debug.NewTreeWriter()
	tw.Line(0, "Properties: %d in %d rule(s)", len(usage), len(sheet.Rules))
	for _, name := range slices.Sorted(maps.Keys(usage)) {
		u := usage[name]
		mark := ""
		if u.Flipped {
			mark = " [flip]"
		}
		tw.Line(1, "%s%s: %d", name, mark, u.Count)
		for _, sel := range u.Selectors {
			tw.Line(2, "%s", sel)
		}
	}
	return tw.String(), len(usage)
}

// DumpDiffTxt writes declarations changed by flip to <stem>-diff.txt. Both
// stylesheets must come from the same source.
func DumpDiffTxt(original, flipped *css.Stylesheet, inPath, outDir string, overwrite bool) error {
	var sb strings.Builder
	count, err := WriteDiff(&sb, original, flipped)
	if err != nil {
		return err
	}
	if err := WriteOutput(inPath, outDir, "-diff.txt", []byte(sb.String()), overwrite); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "diff: %d declaration(s) changed\n", count)
	return nil
}

// WriteDiff writes every declaration which differs between original and
// flipped and returns number of changes.
func WriteDiff(w io.Writer, original, flipped *css.Stylesheet) (int, error) {
	if len(original.Rules) != len(flipped.Rules) {
		return 0, fmt.Errorf("rule count differs: %d != %d", len(original.Rules), len(flipped.Rules))
	}

	count := 0
	for i, r := range original.Rules {
		f := flipped.Rules[i]
		if len(r.Declarations) != len(f.Declarations) {
			return count, fmt.Errorf("rule %d (%s): declaration count differs", i, r.Selector)
		}
		header := false
		for j, d := range r.Declarations {
			before, after := d.String(), f.Declarations[j].String()
			if before == after {
				continue
			}
			if !header {
				if _, err := fmt.Fprintf(w, "%s\n", r.Selector); err != nil {
					return count, err
				}
				header = true
			}
			if _, err := fmt.Fprintf(w, "  - %s\n  + %s\n", before, after); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// WriteOutput writes data to <stem><suffix> in either the input file's directory or outDir.
func WriteOutput(inPath, outDir, suffix string, data []byte, overwrite bool) error {
	base := filepath.Base(inPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dir := filepath.Dir(inPath)
	if outDir != "" {
		dir = outDir
	}
	outPath := filepath.Join(dir, stem+suffix)

	if _, err := os.Stat(outPath); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s (use -overwrite)", outPath)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}
