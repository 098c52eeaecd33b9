package filex

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hros-ess/internal/common"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	base := t.TempDir()
	got, err := EnsureDir(filepath.Join(base, "downloads", "E1001"))
	require.NoError(t, err)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	require.True(t, filepath.IsAbs(got))
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	_, err := EnsureDir(dir)
	require.NoError(t, err)
	_, err = EnsureDir(dir)
	require.NoError(t, err)
}

func TestSafeJoin(t *testing.T) {
	dir := t.TempDir()

	p, err := SafeJoin(dir, "passport_front.jpg")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "passport_front.jpg"), p)

	for _, bad := range []string{"", ".", "..", "../etc/passwd", "a/b.pdf", `a\b.pdf`} {
		_, err := SafeJoin(dir, bad)
		require.ErrorIs(t, err, ErrInvalidName, "name %q", bad)
		require.ErrorIs(t, err, common.ErrorValidation, "name %q", bad)
	}
}

func TestWriteFile_WritesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.pdf")

	n, err := WriteFile(path, strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.EqualValues(t, 8, n)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4", string(b))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteFile_FailedCopyLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.pdf")

	_, err := WriteFile(path, io.MultiReader(strings.NewReader("part"), failingReader{}))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "no partial or temp files must remain")
}
