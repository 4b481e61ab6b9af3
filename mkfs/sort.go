package mkfs

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

// Kind classifies generated files by their name.
type Kind int

const (
	Other Kind = iota
	Source
	Header
)

func (k Kind) String() string {
	switch k {
	case Source:
		return "source"
	case Header:
		return "header"
	}
	return "other"
}

var (
	SourceFiles = Any{NameMatch("*.cc"), NameMatch("*.cpp"), NameMatch("*.c")}
	HeaderFiles = Any{NameMatch("*.h"), NameMatch("*.hpp"), NameMatch("*.hh")}
)

// Classify returns the kind of the directory entry e at path p.
func Classify(p string, e fs.DirEntry) (Kind, error) {
	if ok, err := SourceFiles.Ok(p, e); err != nil {
		return Other, err
	} else if ok {
		return Source, nil
	}
	if ok, err := HeaderFiles.Ok(p, e); err != nil {
		return Other, err
	} else if ok {
		return Header, nil
	}
	return Other, nil
}

// Dests are the directories that receive sorted files. An empty directory
// name disables the respective kind.
type Dests struct {
	Srcs, Hdrs string
}

func (d Dests) IsZero() bool { return d.Srcs == "" && d.Hdrs == "" }

func (d Dests) dir(k Kind) string {
	switch k {
	case Source:
		return d.Srcs
	case Header:
		return d.Hdrs
	}
	return ""
}

// SortOutputs moves the regular files directly inside dir into the
// destinations by kind. Every file is removed from dir, also the ones that
// were not copied. Afterwards each configured destination must hold at least
// one regular file.
func SortOutputs(tr *hdlkore.Trace, dir string, to Dests) error {
	if dir == "" || to.IsZero() {
		return nil
	}
	src := DirList{Dir: dir, Filter: Regular{}}
	if ok, err := src.Exists(); err != nil {
		return errors.Wrap(err, "output directory")
	} else if !ok {
		return errors.Errorf("output directory does not exist: %s", dir)
	}
	if err := MkDirs(tr, DefaultDirMode, to.Srcs, to.Hdrs); err != nil {
		return err
	}
	var cp Copy
	err := src.ls(func(p string, e fs.DirEntry) error {
		kind, err := Classify(p, e)
		if err != nil {
			return err
		}
		if dst := to.dir(kind); dst != "" {
			if err := cp.File(tr, filepath.Join(dst, e.Name()), p); err != nil {
				return err
			}
		} else {
			tr.Debug("drop `kind` `file`",
				slog.String(`kind`, kind.String()),
				slog.String(`file`, p),
			)
		}
		if err := os.Remove(p); err != nil {
			return errors.Wrap(err, "failed to delete")
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := checkNotEmpty("output_srcs", to.Srcs); err != nil {
		return err
	}
	return checkNotEmpty("output_hdrs", to.Hdrs)
}

func checkNotEmpty(what, dir string) error {
	if dir == "" {
		return nil
	}
	ok, err := DirList{Dir: dir, Filter: Regular{}}.Any()
	if err != nil {
		return errors.Wrapf(err, "%s directory", what)
	}
	if !ok {
		return errors.Errorf("%s directory is empty: %s", what, dir)
	}
	return nil
}
