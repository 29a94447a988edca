package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse decodes a raw report document. A syntax error fails the whole
// parse; per-row problems (regions without coordinates) are left for the
// ingestor to skip, since reports routinely contain malformed rows.
func Parse(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}

// ReadFile loads and parses a report from disk. A missing or unreadable
// report file is always an error, unlike the overlay's missing-file case.
func ReadFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	return Parse(data)
}
