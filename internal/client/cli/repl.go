package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context, args []string) error
	Attendance(ctx context.Context, args []string) error
	Leave(ctx context.Context, args []string) error
	Payroll(ctx context.Context, args []string) error
	Payslip(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	EditProfile(ctx context.Context, args []string) error
	Documents(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	Handbook(ctx context.Context, args []string) error
	Chat(ctx context.Context, args []string) error
	Send(ctx context.Context, args []string) error
	Birthdays(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
	Language(ctx context.Context, args []string) error
	Reset(ctx context.Context, args []string) error
}

type command struct {
	route services.Route
	run   func(e execIface, ctx context.Context, args []string) error
}

// commands maps REPL words to the screen they open. Screens outside the
// public routes need a session.
var commands = map[string]command{
	"dashboard":  {"/dashboard", execIface.Dashboard},
	"attendance": {"/attendance", execIface.Attendance},
	"leave":      {"/leave", execIface.Leave},
	"payroll":    {"/payroll", execIface.Payroll},
	"payslip":    {"/payroll", execIface.Payslip},
	"profile":    {"/profile", execIface.Profile},
	"edit":       {"/profile", execIface.EditProfile},
	"documents":  {"/documents", execIface.Documents},
	"download":   {"/documents", execIface.Download},
	"handbook":   {"/handbook", execIface.Handbook},
	"chat":       {"/chat", execIface.Chat},
	"send":       {"/chat", execIface.Send},
	"birthdays":  {"/birthday", execIface.Birthdays},
	"settings":   {"/settings", execIface.Settings},
	"theme":      {"/settings", execIface.Theme},
	"lang":       {"/settings", execIface.Language},
	"reset":      {"/settings", execIface.Reset},
}

const (
	helpLoggedOut = "Available commands: login, help, exit"
	helpLoggedIn  = "Available commands: dashboard, attendance [remote|onsite|live], leave [type], " +
		"payroll [month], payslip <n>, profile, edit, documents [emp_no], download <file>, " +
		"handbook [keyword], chat, send <text>, birthdays, settings, theme, lang [code], reset, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the ESS CLI.
//
// It reads a line from r, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that open a protected screen are
// refused until the user logs in. The loop exits on EOF, when ctx is done,
// or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("ess %s> ", statusFn()))

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			c, ok := commands[cmd]
			if !ok {
				printlnFn("Unknown command:", cmd)
				continue
			}
			if services.Guard(string(c.route), a.isLoggedIn()) != c.route {
				printlnFn("Please log in first.")
				continue
			}
			_ = c.run(a, ctx, args)
		}
	}
}
