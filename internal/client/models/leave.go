package models

// LeaveBalances maps a leave type to the remaining days. Values arrive as
// numbers or numeric strings.
type LeaveBalances map[string]FlexString

type LeaveRecord struct {
	ID        FlexString `json:"leave_id"`
	LeaveType FlexString `json:"leave_type"`
	StartDate FlexString `json:"start_date"`
	EndDate   FlexString `json:"end_date"`
	Status    FlexString `json:"status"`
}
