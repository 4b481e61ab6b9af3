package mkfs

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

// DefaultDirMode is used for directories the wrapper creates.
const DefaultDirMode fs.FileMode = 0777

// MkDirs creates every non-empty dir including missing parents.
func MkDirs(tr *hdlkore.Trace, mode fs.FileMode, dirs ...string) error {
	if mode == 0 {
		mode = DefaultDirMode
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		tr.Debug("create `directory`", `directory`, dir)
		if err := os.MkdirAll(dir, mode); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	return nil
}
