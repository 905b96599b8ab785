// Package girxml decodes the XML form of GObject-Introspection repositories.
package girxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Decode reads one repository document.
func Decode(r io.Reader) (*Repository, error) {
	var repo Repository
	d := xml.NewDecoder(r)
	if err := d.Decode(&repo); err != nil {
		return nil, fmt.Errorf("girxml: failed to decode repository: %w", err)
	}
	return &repo, nil
}

// ParseIndex parses a parameter index attribute. Absent or malformed
// values yield nil.
func ParseIndex(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
