package testutils

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewMemFs returns an in-memory filesystem with dir already created
func NewMemFs(t *testing.T, dir string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(dir, 0755))
	return fs
}

// CreateTestFilesWithContent creates files under dir, including any parent
// directories named in the keys
func CreateTestFilesWithContent(t *testing.T, fs afero.Fs, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		WriteFile(t, fs, filepath.Join(dir, name), content)
	}
}

// CreateTestFilesWithDefault creates a small mixed set of files under dir
func CreateTestFilesWithDefault(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	files := map[string]string{
		"test1.txt": "test content 1",
		"test2.txt": "test content 2",
		"test3.jpg": "image content",
	}
	CreateTestFilesWithContent(t, fs, dir, files)
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

// ReadFile returns the content of path
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether path exists
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// DirNames returns the sorted names of the entries of dir
func DirNames(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	infos, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	return ansi.Strip(str)
}
