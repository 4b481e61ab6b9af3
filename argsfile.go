package hdlwrap

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

const maxArgLine = 16 << 20

// ReadArgs reads one argument per line. Empty lines are dropped, all other
// lines are taken as they are.
func ReadArgs(r io.Reader) (args []string, err error) {
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, 64*1024), maxArgLine)
	for scn.Scan() {
		if line := scn.Text(); line != "" {
			args = append(args, line)
		}
	}
	return args, scn.Err()
}

func ReadArgsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open args file")
	}
	defer f.Close()
	args, err := ReadArgs(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read args file %s", path)
	}
	return args, nil
}
