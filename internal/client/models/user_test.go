package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUser_RoundTripPreservesAllFields(t *testing.T) {
	raw := `{"emp_no":"E1001","name":"Jane Doe","designation":"Nurse","department":{"id":7,"title":"ICU"},"active":true,"grade":4.5}`

	u, err := ParseUser([]byte(raw))
	require.NoError(t, err)

	out, err := json.Marshal(u)
	require.NoError(t, err)

	var want, got map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Empty(t, cmp.Diff(want, got))
}

func TestUser_Accessors(t *testing.T) {
	u, err := ParseUser([]byte(`{"emp_no":1001,"staff_name":"Ali","designation":"Clerk"}`))
	require.NoError(t, err)

	assert.Equal(t, "1001", u.EmpNo())
	assert.Equal(t, "Ali", u.Name(), "staff_name is the fallback display name")
	assert.Equal(t, "Clerk", u.Designation())
	assert.Equal(t, "", u.String("missing"))
}

func TestParseUser_RejectsNonObjects(t *testing.T) {
	for _, raw := range []string{`null`, `[1,2]`, `"E1001"`, `{broken`} {
		_, err := ParseUser([]byte(raw))
		assert.Error(t, err, "input %s", raw)
	}
}

func TestNewUser_CopiesInput(t *testing.T) {
	in := map[string]any{"emp_no": "E1"}
	u := NewUser(in)
	in["emp_no"] = "changed"

	assert.Equal(t, "E1", u.EmpNo())

	f := u.Fields()
	f["emp_no"] = "changed"
	assert.Equal(t, "E1", u.EmpNo())
}

func TestUser_NilSafe(t *testing.T) {
	var u *User
	_, ok := u.Get("emp_no")
	assert.False(t, ok)
	assert.Equal(t, "", u.String("emp_no"))
}
