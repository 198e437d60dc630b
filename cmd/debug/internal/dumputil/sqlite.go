package dumputil

import (
	"fmt"
	"os"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"r2/css"
)

const schema = `
CREATE TABLE rules (
	id       INTEGER PRIMARY KEY,
	selector TEXT NOT NULL
);
CREATE TABLE declarations (
	rule_id  INTEGER NOT NULL REFERENCES rules(id),
	position INTEGER NOT NULL,
	property TEXT NOT NULL,
	value    TEXT NOT NULL,
	flipped_property TEXT,
	flipped_value    TEXT,
	PRIMARY KEY (rule_id, position)
);
`

// DumpSQLite writes parsed rules and declarations into <stem>.sqlite for ad
// hoc queries. When flipped is not nil its declarations are stored alongside
// originals.
func DumpSQLite(original, flipped *css.Stylesheet, inPath, outDir string, overwrite bool) error {
	data, err := BuildDatabase(original, flipped)
	if err != nil {
		return err
	}
	if err := WriteOutput(inPath, outDir, ".sqlite", data, overwrite); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "sqlite: stored %d rule(s)\n", len(original.Rules))
	return nil
}

// BuildDatabase fills in-memory database and returns its serialized image.
func BuildDatabase(original, flipped *css.Stylesheet) (_ []byte, err error) {
	if flipped != nil && len(flipped.Rules) != len(original.Rules) {
		return nil, fmt.Errorf("rule count differs: %d != %d", len(original.Rules), len(flipped.Rules))
	}

	conn, err := sqlite.OpenConn(":memory:", sqlite.OpenReadWrite, sqlite.OpenMemory)
	if err != nil {
		return nil, fmt.Errorf("open in-memory db: %w", err)
	}
	defer conn.Close()

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if err := fill(conn, original, flipped); err != nil {
		return nil, err
	}

	data, err := conn.Serialize("main")
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	return data, nil
}

func fill(conn *sqlite.Conn, original, flipped *css.Stylesheet) (err error) {
	defer sqlitex.Save(conn)(&err)

	for i, r := range original.Rules {
		if err := sqlitex.Execute(conn, `INSERT INTO rules (id, selector) VALUES (?, ?)`,
			&sqlitex.ExecOptions{Args: []any{i, r.Selector}}); err != nil {
			return fmt.Errorf("insert rule %d: %w", i, err)
		}
		for j, d := range r.Declarations {
			var fp, fv any
			if flipped != nil && j < len(flipped.Rules[i].Declarations) {
				fd := flipped.Rules[i].Declarations[j]
				fp, fv = fd.Property, fd.Value
			}
			if err := sqlitex.Execute(conn,
				`INSERT INTO declarations (rule_id, position, property, value, flipped_property, flipped_value) VALUES (?, ?, ?, ?, ?, ?)`,
				&sqlitex.ExecOptions{Args: []any{i, j, d.Property, d.Value, fp, fv}}); err != nil {
				return fmt.Errorf("insert declaration %d of rule %d: %w", j, i, err)
			}
		}
	}
	return nil
}
