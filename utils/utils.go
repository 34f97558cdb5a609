// Package utils holds small filesystem helpers shared by application
// configuration loading and the CLI.
package utils

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

// WriteFile writes buf to a file whose path is indicated by filename.
// It refuses to overwrite an existing file.
func WriteFile(filename string, buf []byte, perm os.FileMode) error {
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("can't write file: %q already exists", filename)
	}

	if err := ioutil.WriteFile(filename, buf, perm); err != nil {
		return err
	}
	return nil
}

// ResolvePath returns file unchanged if it is absolute; otherwise it
// joins file onto the directory of other. The result is relative when
// both file and other are relative.
func ResolvePath(file, other string) string {
	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(other), file)
	}
	return file
}
