package mkfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DirList are the entries directly inside Dir that pass Filter. A nil Filter
// passes everything.
type DirList struct {
	Dir    string
	Filter Filter
}

func (d DirList) Path() string { return d.Dir }

// List returns the paths of the selected entries, Dir included.
func (d DirList) List() (ls []string, err error) {
	err = d.ls(func(p string, _ fs.DirEntry) error {
		ls = append(ls, p)
		return nil
	})
	return
}

// Exists reports whether Dir exists. An existing Dir that is no directory
// is an error.
func (d DirList) Exists() (bool, error) {
	st, err := os.Stat(d.Dir)
	switch {
	case err == nil:
		if !st.IsDir() {
			return true, errors.Errorf("%s is no directory", d.Dir)
		}
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	}
	return false, err
}

// Any reports whether at least one entry passes the filter.
func (d DirList) Any() (found bool, err error) {
	err = d.ls(func(string, fs.DirEntry) error {
		found = true
		return fs.SkipAll
	})
	if errors.Is(err, fs.SkipAll) {
		err = nil
	}
	return found, err
}

func (d DirList) ls(do func(p string, e fs.DirEntry) error) error {
	rdir, err := os.ReadDir(d.Dir)
	if err != nil {
		return err
	}
	for _, entry := range rdir {
		p := filepath.Join(d.Dir, entry.Name())
		if d.Filter != nil {
			if ok, err := d.Filter.Ok(p, entry); err != nil {
				return err
			} else if !ok {
				continue
			}
		}
		if err := do(p, entry); err != nil {
			return err
		}
	}
	return nil
}
