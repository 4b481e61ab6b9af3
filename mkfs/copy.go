package mkfs

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

// Copy copies single files. A zero MkDirMode does not create missing target
// directories.
type Copy struct {
	MkDirMode fs.FileMode
}

// File copies src to dst. An existing dst is overwritten, a new one gets the
// permission bits of src.
func (cp Copy) File(tr *hdlkore.Trace, dst, src string) error {
	sstat, err := os.Stat(src)
	if err != nil {
		return errors.Wrap(err, "copy")
	}
	return cp.copyFile(tr, dst, src, sstat)
}

func (cp Copy) copyFile(tr *hdlkore.Trace, dst, src string, sstat fs.FileInfo) (err error) {
	if src == dst {
		return nil
	}
	tr.Debug("FS copy: `src` -> `dst`",
		slog.String(`src`, src),
		slog.String(`dst`, dst),
	)
	if err := cp.provideDir(filepath.Dir(dst)); err != nil {
		return err
	}
	w, err := os.OpenFile(dst,
		os.O_CREATE|os.O_TRUNC|os.O_WRONLY,
		sstat.Mode().Perm(),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	defer func() {
		if e := w.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "failed to copy %s to %s", src, dst)
		}
	}()
	r, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	defer r.Close()
	if _, err = io.Copy(w, r); err != nil {
		return errors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	return nil
}

func (cp Copy) provideDir(path string) error {
	if cp.MkDirMode == 0 {
		return nil
	}
	return MkDirs(nil, cp.MkDirMode, path)
}
