package models

import "time"

type Birthday struct {
	EmpNo       FlexString `json:"emp_no"`
	Name        FlexString `json:"name"`
	Designation FlexString `json:"designation"`
	DOB         FlexString `json:"dob"`
}

// UpcomingBirthday is a Birthday placed on the calendar of a given year.
type UpcomingBirthday struct {
	Birthday
	Date time.Time
}
