// Package csvfile implements the entry and credential repositories on top of
// plain CSV files. Each store rewrites its whole file on every change.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// table is the parsed content of a CSV file.
type table struct {
	rows  [][]string
	index map[string]int
	// created is set when the file was missing or zero bytes and has just
	// been written with only the header.
	created bool
}

// readTable returns the data rows of path and a column index built from its
// header. A missing or empty file is recreated holding only header.
func readTable(path string, header []string) (table, error) {
	fresh := table{index: indexOf(header), created: true}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return fresh, writeTable(path, header, nil)
	}
	if err != nil {
		return table{}, fmt.Errorf("csvfile: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	head, err := r.Read()
	if errors.Is(err, io.EOF) {
		_ = f.Close()
		return fresh, writeTable(path, header, nil)
	}
	if err != nil {
		return table{}, fmt.Errorf("csvfile: read %s: %w", path, err)
	}
	rows, err := r.ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("csvfile: read %s: %w", path, err)
	}
	return table{rows: rows, index: indexOf(head)}, nil
}

// writeTable replaces path with header followed by rows.
func writeTable(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("csvfile: write %s: %w", path, err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("csvfile: write %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err == nil {
		err = w.WriteAll(rows)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("csvfile: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("csvfile: write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("csvfile: write %s: %w", path, err)
	}
	return nil
}

func indexOf(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return idx
}
