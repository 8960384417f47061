package generator

import (
	"io/fs"
	"path/filepath"

	"github.com/pkg/errors"
)

const templateExt = ".html"

// Discover lists template files under root in lexical order. The exclude
// directory, typically the output root, is not descended into.
func Discover(root, exclude string) ([]string, error) {
	var templates []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if exclude != "" && path == exclude && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) == templateExt {
			templates = append(templates, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", root)
	}

	return templates, nil
}
