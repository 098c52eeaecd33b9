package models

import (
	"path"
	"strings"
)

// Document is one identity/employment document with up to three scans.
type Document struct {
	DocType       FlexString `json:"doc_type"`
	FrontFileName FlexString `json:"front_file_name"`
	BackFileName  FlexString `json:"back_file_name"`
	PhotoFileName FlexString `json:"photo_file_name"`
}

// Files returns the non-empty file names in front, back, photo order.
func (d Document) Files() []string {
	var out []string
	for _, f := range []FlexString{d.FrontFileName, d.BackFileName, d.PhotoFileName} {
		if f != "" {
			out = append(out, f.String())
		}
	}
	return out
}

type FileKind string

const (
	FileKindImage FileKind = "image"
	FileKindPDF   FileKind = "pdf"
	FileKindOther FileKind = "other"
)

// KindOf classifies a file name by extension.
func KindOf(name string) FileKind {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return FileKindImage
	case ".pdf":
		return FileKindPDF
	default:
		return FileKindOther
	}
}

// PhotoFileName returns the first photo file name found in docs.
func PhotoFileName(docs []Document) string {
	for _, d := range docs {
		if d.PhotoFileName != "" {
			return d.PhotoFileName.String()
		}
	}
	return ""
}
