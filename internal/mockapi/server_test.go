package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(New())
	defer srv.Close()

	resp, err := http.PostForm(srv.URL+"/ess/auth/index.php", url.Values{"username": {"E1001"}, "password": {"pass"}})
	require.NoError(t, err)
	body := decode(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Jane Doe", body["data"].(map[string]any)["name"])

	resp, err = http.PostForm(srv.URL+"/ess/auth/index.php", url.Values{"username": {"E1001"}, "password": {"nope"}})
	require.NoError(t, err)
	body = decode(t, resp)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Invalid username or password", body["message"])
}

func TestCallsAndRequestIDs(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/ess/handbook/index.php", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, s.Calls("/ess/handbook/index.php"))
	assert.Equal(t, []string{"abc"}, s.RequestIDs())
}

func TestChatSendAndPush(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s)
	defer srv.Close()

	before := len(s.Messages("E1001"))

	resp, err := http.PostForm(srv.URL+"/ess/chat/send.php", url.Values{"emp_no": {"E1001"}, "message": {"hello"}})
	require.NoError(t, err)
	assert.Equal(t, "success", decode(t, resp)["status"])

	s.PushHRMessage("E1001", "hi Jane")

	resp, err = http.Get(srv.URL + "/ess/chat/index.php?emp_no=E1001")
	require.NoError(t, err)
	body := decode(t, resp)
	msgs := body["messages"].([]any)
	require.Len(t, msgs, before+2)
	last := msgs[len(msgs)-1].(map[string]any)
	assert.Equal(t, "hr", last["from"])
	assert.Equal(t, "hi Jane", last["message"])
}

func TestUpdateProfile_RequiresAllFields(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s)
	defer srv.Close()

	form := "--X\r\nContent-Disposition: form-data; name=\"emp_no\"\r\n\r\nE1001\r\n--X--\r\n"
	resp, err := http.Post(srv.URL+"/ess/employees/update_profile.php", "multipart/form-data; boundary=X", strings.NewReader(form))
	require.NoError(t, err)
	body := decode(t, resp)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "All fields are required", body["message"])
}

func TestFiles(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s)
	defer srv.Close()

	s.PutFile("x.pdf", []byte("%PDF-1.4"))

	resp, err := http.Get(srv.URL + "/assets/document/x.pdf")
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(b))

	resp, err = http.Get(srv.URL + "/assets/document/missing.pdf")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSetDown(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s)
	defer srv.Close()

	s.SetDown("/ess/handbook/index.php", http.StatusServiceUnavailable)
	resp, err := http.Get(srv.URL + "/ess/handbook/index.php")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	s.SetDown("/ess/handbook/index.php", 0)
	resp, err = http.Get(srv.URL + "/ess/handbook/index.php")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
