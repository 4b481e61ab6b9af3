package mkfs

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestDirList_List(t *testing.T) {
	tmp := t.TempDir()
	writeFiles(t, tmp, "empty.txt", "x.h")
	testerr.Shall(os.Mkdir(filepath.Join(tmp, "sub"), 0777)).BeNil(t)
	d := DirList{Dir: tmp, Filter: IsDir(false)}
	ls := testerr.Shall1(d.List()).BeNil(t)
	slices.Sort(ls)
	want := []string{filepath.Join(tmp, "empty.txt"), filepath.Join(tmp, "x.h")}
	if !slices.Equal(ls, want) {
		t.Errorf("ls: %v", ls)
	}
	d.Filter = All{IsDir(false), Not(NameMatch("*.txt"))}
	ls = testerr.Shall1(d.List()).BeNil(t)
	if !slices.Equal(ls, want[1:]) {
		t.Errorf("ls with filter: %v", ls)
	}
}

func TestDirList_Any(t *testing.T) {
	tmp := t.TempDir()
	d := DirList{Dir: tmp, Filter: Regular{}}
	if testerr.Shall1(d.Any()).BeNil(t) {
		t.Error("empty dir has entries")
	}
	testerr.Shall(os.Mkdir(filepath.Join(tmp, "sub"), 0777)).BeNil(t)
	if testerr.Shall1(d.Any()).BeNil(t) {
		t.Error("directory counted as regular file")
	}
	writeFiles(t, tmp, "f")
	if !testerr.Shall1(d.Any()).BeNil(t) {
		t.Error("regular file not found")
	}
}

func TestRegular_symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	tmp := t.TempDir()
	writeFiles(t, tmp, "target")
	testerr.Shall(os.Symlink(filepath.Join(tmp, "target"), filepath.Join(tmp, "link"))).BeNil(t)
	testerr.Shall(os.Symlink(filepath.Join(tmp, "gone"), filepath.Join(tmp, "dangling"))).BeNil(t)
	ls := testerr.Shall1(DirList{Dir: tmp, Filter: Regular{}}.List()).BeNil(t)
	slices.Sort(ls)
	want := []string{filepath.Join(tmp, "link"), filepath.Join(tmp, "target")}
	if !slices.Equal(ls, want) {
		t.Errorf("regular files: %v", ls)
	}
}
