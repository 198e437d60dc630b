package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readReport(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport(t *testing.T) {
	tmpDir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(tmpDir, "ltr.css")
	if err := os.WriteFile(src, []byte("a{float:left}"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	r.Store("source/ltr.css", src)
	r.StoreData("dump/ltr.txt", []byte("stylesheet: rules=1"))
	r.StoreData("dump/ltr.txt", []byte("stylesheet: rules=2"))
	if err := r.StoreCopy("copy", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	scratch := r.scratch[0]

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	files := readReport(t, conf.Destination)
	if files["source/ltr.css"] != "a{float:left}" {
		t.Errorf("stored file = %q", files["source/ltr.css"])
	}
	if files["dump/ltr.txt"] != "stylesheet: rules=1" {
		t.Errorf("stored data = %q", files["dump/ltr.txt"])
	}
	versioned := 0
	for name := range files {
		if strings.HasPrefix(name, "dump/ltr.txt-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected repeated name to be versioned, files: %v", files)
	}
	if files["copy"] != "a{float:left}" {
		t.Errorf("stored copy = %q", files["copy"])
	}
	if !strings.Contains(files["MANIFEST"], "source/ltr.css") {
		t.Errorf("MANIFEST misses entry:\n%s", files["MANIFEST"])
	}

	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		t.Errorf("expected temporary copy to be removed, stat error: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("stored file should not be removed: %v", err)
	}
}

func TestReport_StoreConflict(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("final.log", "/tmp/a.log")
	r.Store("final.log", "/tmp/a.log")

	defer func() {
		if recover() == nil {
			t.Error("expected panic when overwriting stored path")
		}
	}()
	r.Store("final.log", "/tmp/b.log")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
