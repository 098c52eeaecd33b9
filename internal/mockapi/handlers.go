package mockapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respond(w, func() (int, any) { return failure("Invalid request") })
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	s.respond(w, func() (int, any) {
		if username == "" || password == "" {
			return failure("Username and password are required")
		}
		acc, ok := s.accounts[username]
		if !ok || acc.password != password {
			return failure("Invalid username or password")
		}
		return success(acc.user)
	})
}

func (s *Server) handleEmployee(w http.ResponseWriter, r *http.Request) {
	empNo := empNoOf(r)
	s.respond(w, func() (int, any) {
		e, ok := s.employees[empNo]
		if !ok {
			return failure("Employee not found")
		}
		return success(e)
	})
}

var profileFields = []string{
	"contact_number",
	"email",
	"present_address",
	"emergency_contact_number",
	"emergency_contact_name",
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		s.respond(w, func() (int, any) { return failure("Invalid form data") })
		return
	}
	empNo := strings.TrimSpace(r.FormValue("emp_no"))

	s.respond(w, func() (int, any) {
		e, ok := s.employees[empNo]
		if !ok {
			return failure("Employee not found")
		}
		for _, f := range profileFields {
			if strings.TrimSpace(r.FormValue(f)) == "" {
				return failure("All fields are required")
			}
		}
		e["contact_number"] = r.FormValue("contact_number")
		e["email"] = r.FormValue("email")
		e["persentaddress"] = r.FormValue("present_address")
		e["emergency_contact_number"] = r.FormValue("emergency_contact_number")
		e["emergency_contact_name"] = r.FormValue("emergency_contact_name")
		return http.StatusOK, map[string]any{"status": "success", "message": "Profile updated successfully"}
	})
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	empNo := empNoOf(r)
	s.respond(w, func() (int, any) {
		if empNo == "" {
			return failure("Employee number is required")
		}
		docs, ok := s.documents[empNo]
		if !ok {
			return failure("No documents found")
		}
		return success(docs)
	})
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	s.respond(w, func() (int, any) {
		switch kind {
		case "notices":
			return success(s.notices)
		case "holidays":
			return success(s.holidays)
		default:
			return failure("Invalid type")
		}
	})
}

func (s *Server) handleLeaveBalances(w http.ResponseWriter, r *http.Request) {
	empNo := empNoOf(r)
	s.respond(w, func() (int, any) {
		b, ok := s.balances[empNo]
		if !ok {
			return success(record{})
		}
		return success(b)
	})
}

func (s *Server) handleLeaveHistory(w http.ResponseWriter, r *http.Request) {
	empNo := empNoOf(r)
	s.respond(w, func() (int, any) {
		return success(s.leaves[empNo])
	})
}

func (s *Server) handleHandbook(w http.ResponseWriter, r *http.Request) {
	s.respond(w, func() (int, any) { return success(s.handbook) })
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	empNo := empNoOf(r)
	s.respond(w, func() (int, any) {
		if empNo == "" {
			return failure("Employee number is required")
		}
		msgs := s.chats[empNo]
		if msgs == nil {
			msgs = []record{}
		}
		return http.StatusOK, map[string]any{"status": "success", "messages": msgs}
	})
}

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respond(w, func() (int, any) { return failure("Invalid request") })
		return
	}
	empNo := strings.TrimSpace(r.PostForm.Get("emp_no"))
	text := strings.TrimSpace(r.PostForm.Get("message"))

	s.respond(w, func() (int, any) {
		if empNo == "" || text == "" {
			return failure("Message cannot be empty")
		}
		s.appendMessage(empNo, "employee", text)
		return http.StatusOK, map[string]any{"status": "success", "message": "Message sent"}
	})
}

// handleBirthdays answers without a status field, like the real endpoint.
func (s *Server) handleBirthdays(w http.ResponseWriter, r *http.Request) {
	s.respond(w, func() (int, any) {
		return http.StatusOK, map[string]any{"data": s.birthdays}
	})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	data, ok := s.files[name]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	_, _ = w.Write(data)
}
