package mockapi

// record is a loosely typed backend row, encoded as-is like the PHP
// endpoints do.
type record = map[string]any

type account struct {
	password string
	user     record
}

// seed fills s with a demo organisation. The demo employee logs in as
// E1001 / pass.
func (s *Server) seed() {
	s.accounts["E1001"] = account{
		password: "pass",
		user: record{
			"emp_no":      "E1001",
			"name":        "Jane Doe",
			"designation": "Accountant",
			"department":  "Finance",
			"username":    "E1001",
		},
	}
	s.accounts["E1002"] = account{
		password: "secret",
		user: record{
			"emp_no":      "E1002",
			"staff_name":  "Ali Hassan",
			"designation": "HR Officer",
		},
	}

	s.employees["E1001"] = record{
		"emp_no":                   "E1001",
		"name":                     "Jane Doe",
		"designation":              "Accountant",
		"department":               "Finance",
		"contact_number":           "7771234",
		"email":                    "jane.doe@example.com",
		"persentaddress":           "H. Blue Lagoon, Male'",
		"emergency_contact_name":   "John Doe",
		"emergency_contact_number": "7779876",
		"date_of_join":             "2019-03-01",
		"basic_salary":             "15000.00",
	}
	s.employees["E1002"] = record{
		"emp_no":         "E1002",
		"name":           "Ali Hassan",
		"designation":    "HR Officer",
		"department":     "Human Resources",
		"contact_number": 7775555,
		"email":          "ali.hassan@example.com",
		"persentaddress": "M. Coral Villa, Male'",
		"date_of_join":   "2021-07-15",
		"basic_salary":   12500,
	}

	s.documents["E1001"] = []record{
		{"doc_type": "Passport", "front_file_name": "E1001_passport_front.jpg", "back_file_name": "E1001_passport_back.jpg", "photo_file_name": nil},
		{"doc_type": "Photo", "front_file_name": nil, "back_file_name": nil, "photo_file_name": "E1001_photo.jpg"},
		{"doc_type": "Contract", "front_file_name": "E1001_contract.pdf", "back_file_name": nil, "photo_file_name": nil},
	}

	s.notices = []record{
		{"id": 1, "title": "Office closure", "content": "The office will close at 1pm on Thursday.", "created_at": "2026-10-01 09:00:00"},
		{"id": 2, "title": "Payroll", "content": "Salaries will be credited on the 25th.", "created_at": "2026-10-10 10:30:00"},
	}
	s.holidays = []record{
		{"id": 1, "holiday_name": "Independence Day", "holiday_date": "2026-07-26"},
		{"id": 2, "holiday_name": "Victory Day", "holiday_date": "2026-11-03"},
		{"id": 3, "holiday_name": "Republic Day", "holiday_date": "2026-11-11"},
	}

	s.balances["E1001"] = record{"Annual Leave": 24, "Sick Leave": "12", "Family Responsibility": 10}
	s.leaves["E1001"] = []record{
		{"leave_id": 11, "leave_type": "Annual Leave", "start_date": "2026-01-05", "end_date": "2026-01-09", "status": "Approved"},
		{"leave_id": 12, "leave_type": "Sick Leave", "start_date": "2026-03-02", "end_date": "2026-03-02", "status": "Approved"},
		{"leave_id": 13, "leave_type": "Annual Leave", "start_date": "2026-12-20", "end_date": "2026-12-31", "status": "Pending"},
	}

	s.handbook = []record{
		{"main_heading": "Working hours", "subsections": []record{
			{"sub_heading": "Office hours", "content": "Sunday to Thursday, 8am to 4pm."},
			{"sub_heading": "Overtime", "content": "Overtime must be approved by the department head."},
		}},
		{"main_heading": "Leave", "subsections": []record{
			{"sub_heading": "Annual leave", "content": "Employees are entitled to 30 days of annual leave."},
			{"sub_heading": "Sick leave", "content": "A medical certificate is required after two days.", "image": "sick_leave.png"},
		}},
	}

	s.birthdays = []record{
		{"emp_no": "E1003", "name": "Mariyam Shifa", "designation": "Clerk", "dob": "1990-12-24"},
		{"emp_no": "E1001", "name": "Jane Doe", "designation": "Accountant", "dob": "1988-02-14"},
		{"emp_no": "E1002", "name": "Ali Hassan", "designation": "HR Officer", "dob": "1985-06-30"},
	}

	s.chats["E1001"] = []record{
		{"id": 1, "from": "hr", "message": "Welcome to the team, Jane!", "timestamp": "2026-10-01 08:00:00"},
		{"id": 2, "from": "employee", "message": "Thank you!", "timestamp": "2026-10-01 08:05:00"},
	}
	s.nextMsgID = 3

	s.files["E1001_passport_front.jpg"] = []byte("\xff\xd8\xff\xe0passport-front")
	s.files["E1001_passport_back.jpg"] = []byte("\xff\xd8\xff\xe0passport-back")
	s.files["E1001_photo.jpg"] = []byte("\xff\xd8\xff\xe0photo")
	s.files["E1001_contract.pdf"] = []byte("%PDF-1.4\ncontract\n%%EOF\n")
}
