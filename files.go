package minihttp

import (
	"fmt"
	"os"
	"path/filepath"
)

// fileRoot serves files from one directory. Names that resolve outside of
// it, through ".." or a symlink, fail to open.
type fileRoot struct {
	root *os.Root
}

func openFileRoot(dir string) (*fileRoot, error) {
	if dir == "" {
		dir = "."
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, ioError("open", err)
	}
	return &fileRoot{root: root}, nil
}

func (fr *fileRoot) name() string {
	return fr.root.Name()
}

// open returns the named regular file and its size.
func (fr *fileRoot) open(name string) (*os.File, int64, error) {
	if !filepath.IsLocal(name) {
		return nil, 0, ioError("open", fmt.Errorf("%q is not a local path", name))
	}

	f, err := fr.root.Open(name)
	if err != nil {
		return nil, 0, ioError("open", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, ioError("stat", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, 0, ioError("open", fmt.Errorf("%s is not a regular file", name))
	}

	return f, info.Size(), nil
}

func (fr *fileRoot) close() error {
	return fr.root.Close()
}
