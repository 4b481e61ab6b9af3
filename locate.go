package hdlwrap

import (
	"path/filepath"

	"github.com/bazelbuild/rules_go/go/runfiles"
	"github.com/pkg/errors"

	"git.fractalqb.de/fractalqb/hdlwrap/hdlkore"
)

// Locator looks up the on-disk path of a runfile. *runfiles.Runfiles is a
// Locator.
type Locator interface {
	Rlocation(path string) (string, error)
}

var _ Locator = (*runfiles.Runfiles)(nil)

func NewRunfilesLocator() (Locator, error) {
	r, err := runfiles.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create runfiles")
	}
	return r, nil
}

// NormalizePath converts slashes to the platform's separator.
func NormalizePath(path string) string { return filepath.FromSlash(path) }

// ResolvePath returns the path loc finds for path. Without a Locator or when
// the lookup fails, it falls back to NormalizePath.
func ResolvePath(tr *hdlkore.Trace, loc Locator, path string) string {
	if loc != nil {
		res, err := loc.Rlocation(path)
		switch {
		case err != nil:
			tr.Debug("no runfile for `path`: `error`", `path`, path, `error`, err)
		case res != "":
			return res
		}
	}
	return NormalizePath(path)
}
