package models

type Notice struct {
	ID        FlexString `json:"id"`
	Title     FlexString `json:"title"`
	Content   FlexString `json:"content"`
	CreatedAt FlexString `json:"created_at"`
}

type Holiday struct {
	ID   FlexString `json:"id"`
	Name FlexString `json:"holiday_name"`
	Date FlexString `json:"holiday_date"`
}
