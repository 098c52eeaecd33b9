package cli

import (
	"context"
	"strings"
)

// Documents lists the documents of the given employee number, or of the
// logged-in employee.
func (a *App) Documents(ctx context.Context, args []string) error {
	docs, err := a.documentService.List(ctx, strings.Join(args, ""))
	if err != nil {
		return a.fail(err, "documents.fetchFailed")
	}

	a.println("==", a.t("documents.title"), "==")
	if len(docs) == 0 {
		a.println(a.t("documents.none"))
		return nil
	}
	for _, d := range docs {
		a.println(d.DocType)
		for _, f := range d.Files {
			a.printf("  [%s] %s  %s\n", f.Kind, f.Name, f.URL)
		}
	}
	return nil
}

func (a *App) Download(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: download <file>")
		return nil
	}
	path, err := a.documentService.Download(ctx, args[0])
	if err != nil {
		return a.fail(err, "error.somethingWrong")
	}
	a.println(a.t("documents.saved", path))
	return nil
}
