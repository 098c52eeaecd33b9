package models

import "strings"

// Employee is the profile returned by /employees/index.php. The backend
// spells the present address "persentaddress".
type Employee struct {
	EmpNo                  FlexString `json:"emp_no"`
	Name                   FlexString `json:"name"`
	Designation            FlexString `json:"designation"`
	Department             FlexString `json:"department"`
	ContactNumber          FlexString `json:"contact_number"`
	Email                  FlexString `json:"email"`
	PresentAddress         FlexString `json:"persentaddress"`
	EmergencyContactName   FlexString `json:"emergency_contact_name"`
	EmergencyContactNumber FlexString `json:"emergency_contact_number"`
	DateOfJoin             FlexString `json:"date_of_join"`
	BasicSalary            FlexString `json:"basic_salary"`
	PhotoFileName          FlexString `json:"photo_file_name"`
}

// ProfileUpdate is the editable part of the profile. All fields are
// required by the update endpoint.
type ProfileUpdate struct {
	ContactNumber          string
	Email                  string
	PresentAddress         string
	EmergencyContactNumber string
	EmergencyContactName   string
}

// ProfileUpdateFrom seeds the edit form from the current profile.
func ProfileUpdateFrom(e Employee) ProfileUpdate {
	return ProfileUpdate{
		ContactNumber:          e.ContactNumber.String(),
		Email:                  e.Email.String(),
		PresentAddress:         e.PresentAddress.String(),
		EmergencyContactNumber: e.EmergencyContactNumber.String(),
		EmergencyContactName:   e.EmergencyContactName.String(),
	}
}

// Missing lists the form keys left blank.
func (p ProfileUpdate) Missing() []string {
	var missing []string
	for _, f := range []struct {
		key, val string
	}{
		{"contact_number", p.ContactNumber},
		{"email", p.Email},
		{"present_address", p.PresentAddress},
		{"emergency_contact_number", p.EmergencyContactNumber},
		{"emergency_contact_name", p.EmergencyContactName},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.key)
		}
	}
	return missing
}

// Apply returns e with the update merged in. Applying the same update
// again yields the same value.
func (p ProfileUpdate) Apply(e Employee) Employee {
	e.ContactNumber = FlexString(p.ContactNumber)
	e.Email = FlexString(p.Email)
	e.PresentAddress = FlexString(p.PresentAddress)
	e.EmergencyContactNumber = FlexString(p.EmergencyContactNumber)
	e.EmergencyContactName = FlexString(p.EmergencyContactName)
	return e
}
