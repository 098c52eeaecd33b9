package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/filex"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

// DocumentFile is one scan of a document.
type DocumentFile struct {
	Name string
	Kind models.FileKind
	URL  string
}

type DocumentEntry struct {
	DocType string
	Files   []DocumentFile
}

type DocumentService struct {
	client      client.Client
	session     *SessionService
	downloadDir string
	log         logging.Logger
}

func NewDocumentService(c client.Client, session *SessionService, downloadDir string, log logging.Logger) *DocumentService {
	return &DocumentService{client: c, session: session, downloadDir: downloadDir, log: log}
}

// List returns the documents of empNo, or of the session employee when
// empNo is empty.
func (d *DocumentService) List(ctx context.Context, empNo string) ([]DocumentEntry, error) {
	empNo = strings.TrimSpace(empNo)
	if empNo == "" {
		var err error
		if empNo, err = d.session.RequireEmpNo(); err != nil {
			return nil, err
		}
	}

	docs, err := d.client.Documents(ctx, empNo)
	if err != nil {
		return nil, err
	}

	out := make([]DocumentEntry, 0, len(docs))
	for _, doc := range docs {
		e := DocumentEntry{DocType: doc.DocType.String()}
		for _, name := range doc.Files() {
			e.Files = append(e.Files, DocumentFile{
				Name: name,
				Kind: models.KindOf(name),
				URL:  d.client.FileURL(name),
			})
		}
		out = append(out, e)
	}
	return out, nil
}

// Download saves the named file into the download directory and returns
// its path.
func (d *DocumentService) Download(ctx context.Context, name string) (string, error) {
	dir, err := filex.EnsureDir(d.downloadDir)
	if err != nil {
		return "", err
	}
	dst, err := filex.SafeJoin(dir, name)
	if err != nil {
		return "", err
	}

	rc, err := d.client.DownloadFile(ctx, name)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	n, err := filex.WriteFile(dst, rc)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	d.log.Info(ctx, "document saved", "file", name, "path", dst, "bytes", n)
	return dst, nil
}
