package i18n

var en = map[string]string{
	"app.title": "HRoS Employee Self-Service",

	"common.error":   "Error",
	"common.loading": "Loading...",
	"common.noData":  "No data",

	"error.title":             "Error",
	"error.tryAgain":          "Please try again.",
	"error.somethingWrong":    "Something went wrong.",
	"error.updateFailed":      "Update failed",
	"error.profileLoad":       "Could not load profile.",
	"error.missingFields":     "Missing fields",
	"error.allFieldsRequired": "All fields are required.",
	"error.loadFailed":        "Could not load data.",

	"auth.login":        "Login",
	"auth.username":     "Username",
	"auth.password":     "Password",
	"auth.loginFailed":  "Login failed",
	"auth.required":     "Enter username and password",
	"auth.logout":       "Logout",
	"auth.logoutFailed": "Logout failed",
	"auth.welcome":      "Welcome, %s",

	"dashboard.title":    "Dashboard",
	"dashboard.notices":  "Notices",
	"dashboard.holidays": "Holidays",
	"dashboard.upcoming": "upcoming",
	"dashboard.past":     "past",

	"tile.attendance": "Attendance",
	"tile.leave":      "Leave",
	"tile.profile":    "Profile",
	"tile.payroll":    "Payroll",
	"tile.documents":  "Documents",
	"tile.handbook":   "Handbook",
	"tile.chat":       "Chat",
	"tile.birthdays":  "Birthdays",
	"tile.settings":   "Settings",

	"attendance.title":  "Attendance",
	"attendance.mode":   "Mode",
	"attendance.remote": "Remote",
	"attendance.onsite": "Onsite",

	"leave.title":     "Leave",
	"leave.balances":  "Leave balances",
	"leave.history":   "Leave history",
	"leave.noRecords": "No leave records",

	"payroll.title":   "Payroll",
	"payroll.basic":   "Basic salary",
	"payroll.monthly": "Monthly salary",
	"payroll.annual":  "Annual salary",
	"payroll.months":  "Pay periods",
	"payroll.payslip": "Payslip",
	"payroll.saved":   "Payslip saved to %s",

	"profile.personalInfo":    "Personal information",
	"profile.jobInfo":         "Job information",
	"profile.contact":         "Contact number",
	"profile.email":           "Email",
	"profile.address":         "Present address",
	"profile.emergencyName":   "Emergency contact name",
	"profile.emergencyNumber": "Emergency contact number",
	"profile.department":      "Department",
	"profile.dateOfJoin":      "Date of join",
	"profile.salary":          "Salary",
	"profile.edit":            "Edit",
	"profile.editProfile":     "Edit profile",
	"profile.save":            "Save",
	"profile.cancel":          "Cancel",
	"toast.profileUpdated":    "Profile updated",

	"documents.title":       "Documents",
	"documents.none":        "No documents found",
	"documents.saved":       "Saved to %s",
	"documents.fetchFailed": "Unable to fetch documents.",

	"handbook.title":             "Employee Handbook",
	"handbook.searchPlaceholder": "Search handbook",
	"handbook.noResults":         "No results found",
	"handbook.loading":           "Loading handbook...",

	"chat.title":       "Chat with HR",
	"chat.placeholder": "Type a message",
	"chat.empty":       "Type something first",
	"chat.sendFailed":  "Send failed",
	"chat.sendError":   "Error sending message",
	"chat.newMessage":  "New message from HR",
	"chat.newMessages": "%d new messages from HR",

	"birthday.title": "Birthdays",
	"birthday.none":  "No upcoming birthdays",

	"setting.title":          "Settings",
	"setting.selectLanguage": "Select language",
	"setting.editTheme":      "Theme",
	"setting.darkMode":       "Dark mode",
	"setting.lightMode":      "Light mode",

	"onboarding.welcome": "Welcome to HRoS",
	"onboarding.page":    "This is Page %d of onboarding",
	"onboarding.start":   "Get Started",
	"onboarding.next":    "Next",
	"onboarding.login":   "Login",
}
