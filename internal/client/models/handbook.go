package models

type HandbookSubsection struct {
	SubHeading string     `json:"sub_heading"`
	Content    string     `json:"content"`
	Image      FlexString `json:"image"`
}

type HandbookSection struct {
	MainHeading string               `json:"main_heading"`
	Subsections []HandbookSubsection `json:"subsections"`
}
