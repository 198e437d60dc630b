// cssdump reads a stylesheet, parses it the same way r2 does and produces
// debugging artifacts: parse tree, property usage report, declarations
// changed by flip and SQLite database with everything parsed.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"r2/cmd/debug/internal/dumputil"
	"r2/css"
)

func main() {
	all := flag.Bool("all", false, "enable all dump flags (-tree, -properties, -diff, -sqlite)")
	tree := flag.Bool("tree", false, "dump parsed stylesheet into <file>-tree.txt")
	properties := flag.Bool("properties", false, "dump property usage into <file>-properties.txt")
	diff := flag.Bool("diff", false, "dump declarations changed by flip into <file>-diff.txt")
	writeSqlite := flag.Bool("sqlite", false, "write parsed and flipped declarations to <file>.sqlite")
	overwrite := flag.Bool("overwrite", false, "overwrite existing output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cssdump [-all] [-tree] [-properties] [-diff] [-sqlite] [-overwrite] <file.css> [outdir]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	if *all {
		*tree = true
		*properties = true
		*diff = true
		*writeSqlite = true
	}

	if !*tree && !*properties && !*diff && !*writeSqlite {
		flag.Usage()
		os.Exit(2)
	}

	defer func(startedAt time.Time) {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", time.Since(startedAt))
	}(time.Now())

	inPath := flag.Arg(0)
	outDir := ""
	if flag.NArg() == 2 {
		outDir = flag.Arg(1)
	}

	b, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", inPath, err)
		os.Exit(1)
	}

	original, err := css.NewParser(nil).Parse(b, inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", inPath, err)
		os.Exit(1)
	}
	// parsed twice, Flip works in place
	flipped, err := css.NewParser(nil).Parse(b, inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", inPath, err)
		os.Exit(1)
	}
	flipped.Flip()

	if *tree {
		if err := dumputil.DumpTreeTxt(original, inPath, outDir, *overwrite); err != nil {
			fmt.Fprintf(os.Stderr, "tree: %v\n", err)
			os.Exit(1)
		}
	}
	if *properties {
		if err := dumputil.DumpPropertiesTxt(original, inPath, outDir, *overwrite); err != nil {
			fmt.Fprintf(os.Stderr, "properties: %v\n", err)
			os.Exit(1)
		}
	}
	if *diff {
		if err := dumputil.DumpDiffTxt(original, flipped, inPath, outDir, *overwrite); err != nil {
			fmt.Fprintf(os.Stderr, "diff: %v\n", err)
			os.Exit(1)
		}
	}
	if *writeSqlite {
		if err := dumputil.DumpSQLite(original, flipped, inPath, outDir, *overwrite); err != nil {
			fmt.Fprintf(os.Stderr, "sqlite: %v\n", err)
			os.Exit(1)
		}
	}
}
