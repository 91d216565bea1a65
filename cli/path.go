package cli

import (
	"os"

	"github.com/ardnew/diced/pkg"
)

// DefaultDirMode is the default permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
