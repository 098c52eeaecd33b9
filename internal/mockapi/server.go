// Package mockapi is an in-memory stand-in for the ESS PHP backend. It
// answers the same paths with the same {status, data|message} envelopes
// and serves document files, so the client can be exercised end to end
// without the real service.
package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

// Route prefixes. The API lives under APIPrefix, files under FilePrefix.
const (
	APIPrefix  = "/ess"
	FilePrefix = "/assets/document"
)

type Server struct {
	mu sync.Mutex

	accounts  map[string]account
	employees map[string]record
	documents map[string][]record
	notices   []record
	holidays  []record
	balances  map[string]record
	leaves    map[string][]record
	handbook  []record
	birthdays []record
	chats     map[string][]record
	files     map[string][]byte
	nextMsgID int

	calls      map[string]int
	down       map[string]int
	lastReqIDs []string

	log    logging.Logger
	now    func() time.Time
	router chi.Router
}

type Option func(*Server)

func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithClock overrides the time used for chat timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New returns a server seeded with demo data.
func New(opts ...Option) *Server {
	s := &Server{
		accounts:  map[string]account{},
		employees: map[string]record{},
		documents: map[string][]record{},
		balances:  map[string]record{},
		leaves:    map[string][]record{},
		chats:     map[string][]record{},
		files:     map[string][]byte{},
		calls:     map[string]int{},
		down:      map[string]int{},
		log:       logging.NewNop(),
		now:       time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.seed()
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.track)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Post("/auth/index.php", s.handleLogin)
		r.Get("/employees/index.php", s.handleEmployee)
		r.Post("/employees/update_profile.php", s.handleUpdateProfile)
		r.Get("/document/index.php", s.handleDocuments)
		r.Get("/settings/index.php", s.handleSettings)
		r.Get("/leaves/balances.php", s.handleLeaveBalances)
		r.Get("/leaves/index.php", s.handleLeaveHistory)
		r.Get("/handbook/index.php", s.handleHandbook)
		r.Get("/chat/index.php", s.handleChat)
		r.Post("/chat/send.php", s.handleChatSend)
		r.Get("/birthday/index.php", s.handleBirthdays)
	})
	r.Get(FilePrefix+"/{name}", s.handleFile)
	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// track counts calls per path, records request ids and answers 503 for
// paths marked down.
func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := r.URL.Path

		s.mu.Lock()
		s.calls[path]++
		s.lastReqIDs = append(s.lastReqIDs, r.Header.Get("X-Request-ID"))
		code := s.down[path]
		s.mu.Unlock()

		if code != 0 {
			http.Error(w, http.StatusText(code), code)
			return
		}

		next.ServeHTTP(w, r)
		s.log.Debug(r.Context(), "mock request",
			"method", r.Method,
			"path", path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"elapsed", time.Since(start),
		)
	})
}

// Calls returns how many requests reached path, e.g. "/ess/auth/index.php".
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// RequestIDs returns the X-Request-ID header of every request so far.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lastReqIDs...)
}

// SetDown makes path answer with code and no envelope. A zero code
// restores it.
func (s *Server) SetDown(path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code == 0 {
		delete(s.down, path)
		return
	}
	s.down[path] = code
}

// PushHRMessage appends a message from HR to the chat of empNo.
func (s *Server) PushHRMessage(empNo, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendMessage(empNo, "hr", text)
}

// Messages returns a copy of the chat of empNo.
func (s *Server) Messages(empNo string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.chats[empNo]))
	for _, m := range s.chats[empNo] {
		c := make(map[string]any, len(m))
		for k, v := range m {
			c[k] = v
		}
		out = append(out, c)
	}
	return out
}

// Employee returns a copy of the stored employee row.
func (s *Server) Employee(empNo string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[empNo]
	if !ok {
		return nil, false
	}
	c := make(map[string]any, len(e))
	for k, v := range e {
		c[k] = v
	}
	return c, true
}

// PutFile stores a document file served under FilePrefix.
func (s *Server) PutFile(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), data...)
}

func (s *Server) appendMessage(empNo, from, text string) {
	s.chats[empNo] = append(s.chats[empNo], record{
		"id":        s.nextMsgID,
		"from":      from,
		"message":   text,
		"timestamp": s.now().Format("2006-01-02 15:04:05"),
	})
	s.nextMsgID++
}

// respond runs fn under the lock, encodes its result and writes it.
func (s *Server) respond(w http.ResponseWriter, fn func() (int, any)) {
	s.mu.Lock()
	code, body := fn()
	b, err := json.Marshal(body)
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

func success(data any) (int, any) {
	return http.StatusOK, map[string]any{"status": "success", "data": data}
}

func failure(format string, args ...any) (int, any) {
	return http.StatusOK, map[string]any{"status": "error", "message": fmt.Sprintf(format, args...)}
}

func empNoOf(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("emp_no"))
}
