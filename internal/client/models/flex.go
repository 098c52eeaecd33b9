// Package models defines the records exchanged with the ESS backend and
// kept by the client.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FlexString accepts a JSON string, number, boolean or null. The PHP
// backend is not consistent about quoting ids, dates and amounts, so every
// scalar field that is only displayed is decoded through it.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*f = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	case bytes.Equal(b, []byte("true")), bytes.Equal(b, []byte("false")):
		*f = FlexString(b)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("flex string: unsupported value %s", b)
		}
		*f = FlexString(n.String())
		return nil
	}
}

func (f FlexString) String() string { return string(f) }

// Int64 parses the value as a base-10 integer.
func (f FlexString) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(f), 10, 64)
	return n, err == nil
}

// backendTimeLayouts are the formats seen in dates and timestamps returned
// by the backend.
var backendTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Time parses the value with the known backend layouts, interpreting
// zone-less values in loc.
func (f FlexString) Time(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range backendTimeLayouts {
		if t, err := time.ParseInLocation(layout, string(f), loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
