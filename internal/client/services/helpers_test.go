package services

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/store"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

// ---- helpers ----

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.New(db)
}

func nop() logging.Logger { return logging.NewNop() }

func jane() *models.User {
	return models.NewUser(map[string]any{
		"emp_no":      "E1001",
		"name":        "Jane Doe",
		"designation": "Accountant",
		"username":    "E1001",
	})
}

func loggedIn(t *testing.T) *SessionService {
	t.Helper()
	s := NewSessionService(setupStore(t), nop())
	require.NoError(t, s.SetUser(context.Background(), jane()))
	return s
}

// ---- failing store ----

// brokenStore fails every write and can be primed for reads.
type brokenStore struct {
	Err error

	User     *models.User
	UserErr  error
	Theme    models.Theme
	ThemeErr error
	Lang     string
	LangErr  error
}

func (b *brokenStore) LoadUser(context.Context) (*models.User, error) { return b.User, b.UserErr }
func (b *brokenStore) SaveUser(context.Context, *models.User) error { return b.Err }
func (b *brokenStore) DeleteUser(context.Context) error { return b.Err }

func (b *brokenStore) LoadTheme(context.Context) (models.Theme, error) { return b.Theme, b.ThemeErr }
func (b *brokenStore) SaveTheme(context.Context, models.Theme) error { return b.Err }

func (b *brokenStore) LoadLanguage(context.Context) (string, error) { return b.Lang, b.LangErr }
func (b *brokenStore) SaveLanguage(context.Context, string) error { return b.Err }

func notFoundStore(err error) *brokenStore {
	return &brokenStore{Err: err, UserErr: common.ErrorNotFound, ThemeErr: common.ErrorNotFound, LangErr: common.ErrorNotFound}
}

// ---- fake client ----

type fakeClient struct {
	mu sync.Mutex

	LoginRet *models.User
	LoginErr error

	EmployeeRet models.Employee
	EmployeeErr error

	UpdateErr error

	DocumentsRet []models.Document
	DocumentsErr error

	NoticesRet  []models.Notice
	NoticesErr  error
	HolidaysRet []models.Holiday
	HolidaysErr error

	BalancesRet models.LeaveBalances
	BalancesErr error
	HistoryRet  []models.LeaveRecord
	HistoryErr  error

	HandbookRet []models.HandbookSection
	HandbookErr error

	// ChatRets is consumed one list per call; the last one repeats.
	ChatRets [][]models.Message
	ChatErr  error
	SendErr  error

	BirthdaysRet []models.Birthday
	BirthdaysErr error

	Files map[string]string

	LoginCalls  int
	UpdateCalls int
	ChatCalls   int
	SendCalls   int

	LastLoginUser string
	LastLoginPass string
	LastEmpNo     string
	LastUpdate    models.ProfileUpdate
	LastSendText  string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(_ context.Context, username, password string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLoginUser, f.LastLoginPass = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Employee(_ context.Context, empNo string) (models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastEmpNo = empNo
	return f.EmployeeRet, f.EmployeeErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, empNo string, p models.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastEmpNo, f.LastUpdate = empNo, p
	return f.UpdateErr
}

func (f *fakeClient) Documents(_ context.Context, empNo string) ([]models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastEmpNo = empNo
	return f.DocumentsRet, f.DocumentsErr
}

func (f *fakeClient) Notices(context.Context) ([]models.Notice, error) {
	return f.NoticesRet, f.NoticesErr
}

func (f *fakeClient) Holidays(context.Context) ([]models.Holiday, error) {
	return f.HolidaysRet, f.HolidaysErr
}

func (f *fakeClient) LeaveBalances(context.Context, string) (models.LeaveBalances, error) {
	return f.BalancesRet, f.BalancesErr
}

func (f *fakeClient) LeaveHistory(context.Context, string) ([]models.LeaveRecord, error) {
	return f.HistoryRet, f.HistoryErr
}

func (f *fakeClient) Handbook(context.Context) ([]models.HandbookSection, error) {
	return f.HandbookRet, f.HandbookErr
}

func (f *fakeClient) ChatMessages(_ context.Context, empNo string) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ChatCalls++
	f.LastEmpNo = empNo
	if f.ChatErr != nil {
		return nil, f.ChatErr
	}
	if len(f.ChatRets) == 0 {
		return []models.Message{}, nil
	}
	ret := f.ChatRets[0]
	if len(f.ChatRets) > 1 {
		f.ChatRets = f.ChatRets[1:]
	}
	return ret, nil
}

func (f *fakeClient) SendChatMessage(_ context.Context, empNo, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SendCalls++
	f.LastEmpNo, f.LastSendText = empNo, text
	return f.SendErr
}

func (f *fakeClient) Birthdays(context.Context) ([]models.Birthday, error) {
	return f.BirthdaysRet, f.BirthdaysErr
}

func (f *fakeClient) DownloadFile(_ context.Context, name string) (io.ReadCloser, error) {
	body, ok := f.Files[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (f *fakeClient) FileURL(name string) string {
	return "https://files.test/" + name
}

func (f *fakeClient) chatCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ChatCalls
}
