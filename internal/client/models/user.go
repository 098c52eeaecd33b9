package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// User is the flat record returned by the login endpoint and kept in the
// local store. Every field sent by the backend is preserved so the stored
// record round-trips unchanged; the well-known ones have accessors.
type User struct {
	fields map[string]any
}

// NewUser wraps a decoded backend object. The map is copied.
func NewUser(fields map[string]any) *User {
	u := &User{fields: make(map[string]any, len(fields))}
	maps.Copy(u.fields, fields)
	return u
}

// ParseUser decodes a stored or received user record. The payload must be a
// JSON object.
func ParseUser(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (u *User) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("user record: %w", err)
	}
	if fields == nil {
		return errors.New("user record: not an object")
	}
	u.fields = fields
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	if u.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(u.fields)
}

// EmpNo is the employee number every authenticated request is keyed by.
func (u *User) EmpNo() string {
	return u.String("emp_no")
}

// Name is the display name; older backend revisions send staff_name.
func (u *User) Name() string {
	if n := u.String("name"); n != "" {
		return n
	}
	return u.String("staff_name")
}

func (u *User) Designation() string {
	return u.String("designation")
}

// Get returns a raw field value.
func (u *User) Get(key string) (any, bool) {
	if u == nil {
		return nil, false
	}
	v, ok := u.fields[key]
	return v, ok
}

// String returns a scalar field as text, or "" when absent or not scalar.
func (u *User) String(key string) string {
	v, ok := u.Get(key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Fields returns a copy of all fields.
func (u *User) Fields() map[string]any {
	out := make(map[string]any, len(u.fields))
	maps.Copy(out, u.fields)
	return out
}
