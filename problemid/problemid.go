// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package problemid

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a problem id does not match
// <digits><letter>[<digit>], e.g. "2119B" or "1408A1".
var ErrInvalidFormat = errors.New("invalid problem id format")

var pattern = regexp.MustCompile(`^([0-9]+)([A-Za-z][0-9]?)$`)

// ID is a parsed problem identifier: a judge contest number plus the
// in-contest index.
type ID struct {
	ContestID int
	Index     string
}

// Parse splits a human-entered problem id into contest number and index.
// The index is normalized to upper case ("2119b" and "2119B" name the
// same problem).
func Parse(raw string) (ID, error) {
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return ID{}, ErrInvalidFormat
	}

	contestID, err := strconv.Atoi(m[1])
	if err != nil {
		// Only possible if the contest number overflows int
		return ID{}, ErrInvalidFormat
	}

	return ID{
		ContestID: contestID,
		Index:     strings.ToUpper(m[2]),
	}, nil
}

// String renders the id back to its canonical form, e.g. "2119B".
func (id ID) String() string {
	return strconv.Itoa(id.ContestID) + id.Index
}
