package fileops_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"fmgr/internal/fileops"
	"fmgr/pkg/testutils"

	"github.com/spf13/afero"
)

const root = "/work"

func newMemOps(t *testing.T, opts ...fileops.Option) (*fileops.Operations, afero.Fs) {
	t.Helper()
	fs := testutils.NewMemFs(t, root)
	return fileops.New(fs, opts...), fs
}

var (
	writeFile = testutils.WriteFile
	readFile  = testutils.ReadFile
	exists    = testutils.Exists
	dirNames  = testutils.DirNames
)

// crossDeviceFs fails renames between directories the way a rename across
// mount points does
type crossDeviceFs struct {
	afero.Fs
}

func (c crossDeviceFs) Rename(oldname, newname string) error {
	if filepath.Dir(oldname) != filepath.Dir(newname) {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: syscall.EXDEV}
	}
	return c.Fs.Rename(oldname, newname)
}

// stickyFs refuses to remove one path
type stickyFs struct {
	afero.Fs
	sticky string
}

func (s stickyFs) Remove(name string) error {
	if filepath.Clean(name) == s.sticky {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
	}
	return s.Fs.Remove(name)
}
