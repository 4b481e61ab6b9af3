package mkfs

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

// Touch creates an empty file at path, truncating an existing one. Missing
// parent directories are created.
func Touch(tr *hdlkore.Trace, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != path {
		if err := MkDirs(tr, DefaultDirMode, dir); err != nil {
			return err
		}
	}
	tr.Debug("touch `file`", `file`, path)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create output file %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to create output file %s", path)
	}
	return nil
}
