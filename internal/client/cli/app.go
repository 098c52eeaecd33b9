package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/config"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/client/notify"
	"github.com/dmitrijs2005/hros-ess/internal/client/screens"
	"github.com/dmitrijs2005/hros-ess/internal/client/services"
	"github.com/dmitrijs2005/hros-ess/internal/client/store"
	"github.com/dmitrijs2005/hros-ess/internal/i18n"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	session     *services.SessionService
	theme       *services.ThemeService
	lang        *services.LanguageService
	startup     *services.StartupService
	reset       *services.ResetService
	onboarding  *services.OnboardingService
	authService services.AuthService
	attendance  *services.AttendanceService
	chat        *services.ChatService

	payrollService  *services.PayrollService
	profileService  *services.ProfileService
	documentService *services.DocumentService

	dashboard *screens.View[services.Dashboard]
	leave     *screens.View[services.LeaveOverview]
	payroll   *screens.View[services.Payroll]
	profile   *screens.View[services.Profile]
	handbook  *screens.View[[]models.HandbookSection]
	birthdays *screens.View[services.BirthdayCalendar]
}

// NewApp opens the local database and builds the app around the HTTP
// backend client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIURL, c.FileURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "client")),
	)

	out := &syncWriter{w: os.Stdout}
	n := notify.NewConsole(out, log)

	return newApp(c, db, apiClient, n, os.Stdin, out, log), nil
}

func newApp(c *config.Config, db *sql.DB, apiClient client.Client, n notify.Notifier, in io.Reader, out io.Writer, log logging.Logger) *App {
	st := store.New(db)

	session := services.NewSessionService(st, log)
	theme := services.NewThemeService(st, log)
	lang := services.NewLanguageService(st, log)

	deviceLocale := c.DeviceLocale
	if deviceLocale == "" {
		deviceLocale = i18n.EnvLocale(os.Getenv)
	}
	device := services.Device{Theme: c.DeviceTheme, Locale: deviceLocale}

	a := &App{
		config: c,
		log:    log,
		db:     db,
		reader: bufio.NewReader(in),
		out:    out,

		session:     session,
		theme:       theme,
		lang:        lang,
		startup:     services.NewStartupService(st, session, theme, lang, device, log),
		reset:       services.NewResetService(st, session, theme, lang, device, log),
		onboarding:  services.NewOnboardingService(st),
		authService: services.NewAuthService(apiClient, session, log),
		attendance:  services.NewAttendanceService(),
		chat:        services.NewChatService(apiClient, session, n, lang, c.ChatPollInterval, log.With("component", "chat")),

		payrollService:  services.NewPayrollService(apiClient, session, c.DownloadDir, log),
		profileService:  services.NewProfileService(apiClient, session, log),
		documentService: services.NewDocumentService(apiClient, session, c.DownloadDir, log),
	}

	a.dashboard = screens.NewView(services.NewDashboardService(apiClient, session).Load)
	a.leave = screens.NewView(services.NewLeaveService(apiClient, session).Load)
	a.payroll = screens.NewView(a.payrollService.Load)
	a.profile = screens.NewView(a.profileService.Load)
	a.handbook = screens.NewView(services.NewHandbookService(apiClient).Load)
	a.birthdays = screens.NewView(services.NewBirthdayService(apiClient).Load)
	return a
}

// Run restores the previous session, routes to the first screen and runs
// the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	if err := a.chat.ConfigureNotifications(ctx); err != nil {
		a.log.Warn(ctx, "notifications unavailable", "error", err)
	}

	a.println(a.t("app.title"), "(type 'help' for commands)")

	res := a.startup.Start(ctx)
	switch res.Route {
	case services.RouteOnboarding:
		_ = a.Onboarding(ctx)
	case services.RouteLogin:
		if res.Manual {
			a.println("Your saved session could not be read. Please log in again.")
		}
		_ = a.Login(ctx)
	case services.RouteDashboard:
		a.println(a.t("auth.welcome", a.userName()))
		a.startChat(ctx)
		_ = a.Dashboard(ctx, nil)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close stops background work and closes the database.
func (a *App) Close(ctx context.Context) {
	a.chat.Stop()
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) userName() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	if n := u.Name(); n != "" {
		return n
	}
	return u.EmpNo()
}

func (a *App) getStatus() string {
	s := string(a.theme.Theme())
	if empNo := a.session.EmpNo(); empNo != "" {
		s = empNo + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) startChat(ctx context.Context) {
	if err := a.chat.Start(ctx); err != nil {
		a.log.Warn(ctx, "chat poller not started", "error", err)
	}
}

func (a *App) t(key string, args ...any) string {
	return a.lang.T(key, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail prints the user-facing text of err and returns err.
func (a *App) fail(err error, fallbackKey string) error {
	a.println(a.t("common.error")+":", client.UserMessage(err, a.t(fallbackKey)))
	return err
}

// syncWriter serialises writes from the REPL and the chat poller.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
