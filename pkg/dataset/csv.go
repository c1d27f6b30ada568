// Package dataset reads user records and produces follow pairs for the graph.
//
// It holds no graph logic: records and edges are plain values that the
// engine consumes during bulk load.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedRecord is returned for rows that do not carry a username and two name columns.
var ErrMalformedRecord = errors.New("malformed user record")

// Record is one user row: username, first name, last name.
type Record struct {
	Username  string
	FirstName string
	LastName  string
}

// Edge is a follow pair: Follower follows Followee.
type Edge struct {
	Follower string
	Followee string
}

// LoadUsers opens path and reads every user record from it.
func LoadUsers(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open user dataset: %w", err)
	}
	defer f.Close()

	records, err := ReadUsers(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadUsers parses comma separated "username,first,last" rows.
// Fields are trimmed and blank lines are skipped. Duplicate usernames are kept;
// rejecting them is the index's job.
func ReadUsers(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read user dataset: %w", err)
		}

		line, _ := cr.FieldPos(0)
		if len(row) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields, got %d: %w", line, len(row), ErrMalformedRecord)
		}
		rec := Record{
			Username:  strings.TrimSpace(row[0]),
			FirstName: strings.TrimSpace(row[1]),
			LastName:  strings.TrimSpace(row[2]),
		}
		if rec.Username == "" {
			return nil, fmt.Errorf("line %d: empty username: %w", line, ErrMalformedRecord)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Usernames extracts the username column, preserving order.
func Usernames(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Username
	}
	return out
}
