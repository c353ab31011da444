// Package timeutil parses the ISO-8601 strings the API accepts. Required
// temporal fields fail loud; optional time windows are dropped on bad input.
// The two helpers keep that asymmetry explicit.
package timeutil

import "time"

var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseRequired parses s or returns the underlying parse error.
func ParseRequired(s string) (time.Time, error) {
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ParseOptional parses s, returning nil when it does not parse.
func ParseOptional(s string) *time.Time {
	t, err := ParseRequired(s)
	if err != nil {
		return nil
	}
	return &t
}
