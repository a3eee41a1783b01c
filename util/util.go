package util

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ExpandHome resolves a leading ~ or ~user the way a shell would.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	name, rest := path[1:], ""
	if i := strings.IndexAny(name, `/\`); i >= 0 {
		name, rest = name[:i], name[i+1:]
	}

	var home string
	if name == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "could not expand ~")
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			// unknown users are left alone, like a shell does
			return path, nil
		}
		home = u.HomeDir
	}
	return filepath.Join(home, rest), nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "could not create output dir %s", dir)
	}
	return nil
}

func JoinNames[A interface{ String() string }](items []A, sep string) string {
	names := make([]string, 0, len(items))
	for _, v := range items {
		names = append(names, v.String())
	}
	return strings.Join(names, sep)
}
