package services

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/notify"
	"github.com/dmitrijs2005/hros-ess/internal/mockapi"
)

const loginPath = mockapi.APIPrefix + "/auth/index.php"

func TestEndToEnd_LoginDashboardProfile(t *testing.T) {
	m := mockapi.New()
	srv := httptest.NewServer(m)
	t.Cleanup(srv.Close)
	c := client.NewHTTPClient(srv.URL+mockapi.APIPrefix, srv.URL+mockapi.FilePrefix)

	st := setupStore(t)
	ctx := context.Background()
	require.NoError(t, NewOnboardingService(st).Finish(ctx))

	session := NewSessionService(st, nop())
	_, err := NewAuthService(c, session, nop()).Login(ctx, "E1001", []byte("pass"))
	require.NoError(t, err)

	d, err := NewDashboardService(c, session).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "E1001", d.Employee.EmpNo.String())
	assert.Equal(t, srv.URL+mockapi.FilePrefix+"/E1001_photo.jpg", d.PhotoURL)
	assert.NotEmpty(t, d.Notices)

	p, err := NewProfileService(c, session, nop()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Employee.Name.String())
	assert.Equal(t, "E1001", p.Employee.EmpNo.String())
	assert.Equal(t, "Jane Doe #E1001", p.DisplayName())

	assert.Equal(t, 1, m.Calls(loginPath))

	// A second launch resumes the stored session without logging in.
	restarted := NewSessionService(st, nop())
	start := NewStartupService(st, restarted, NewThemeService(st, nop()), NewLanguageService(st, nop()), Device{}, nop())
	assert.Equal(t, StartupResult{Route: RouteDashboard}, start.Start(ctx))
	assert.Equal(t, "E1001", restarted.EmpNo())
	assert.Equal(t, 1, m.Calls(loginPath))
}

func TestEndToEnd_ChatAndDownload(t *testing.T) {
	m := mockapi.New()
	srv := httptest.NewServer(m)
	t.Cleanup(srv.Close)
	c := client.NewHTTPClient(srv.URL+mockapi.APIPrefix, srv.URL+mockapi.FilePrefix)

	ctx := context.Background()
	session := NewSessionService(setupStore(t), nop())
	_, err := NewAuthService(c, session, nop()).Login(ctx, "E1001", []byte("pass"))
	require.NoError(t, err)

	rec := &notify.Recorder{}
	chat := NewChatService(c, session, rec, nil, 0, nop())
	require.NoError(t, chat.ConfigureNotifications(ctx))

	before, err := chat.Refresh(ctx)
	require.NoError(t, err)
	seen := len(rec.Sent())

	require.NoError(t, chat.Send(ctx, "Can I get my payslip?"))
	assert.Len(t, chat.Messages(), len(before)+1)
	assert.Len(t, rec.Sent(), seen)

	m.PushHRMessage("E1001", "Sent to your inbox")
	_, err = chat.Refresh(ctx)
	require.NoError(t, err)
	sent := rec.Sent()
	require.Len(t, sent, seen+1)
	assert.Equal(t, "Sent to your inbox", sent[len(sent)-1].Body)

	dir := t.TempDir()
	path, err := NewDocumentService(c, session, dir, nop()).Download(ctx, "E1001_contract.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "E1001_contract.pdf"), path)
}
