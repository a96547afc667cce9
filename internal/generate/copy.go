package generate

import (
	"fmt"
	"os"
	"path/filepath"
)

// excludedNames are files/directories skipped during verbatim directory
// copies; they are tooling artifacts, never catalog content.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// copyVerbatim copies src (file or directory) to dst byte-for-byte and
// returns every file path written, in walk order.
func copyVerbatim(src, dst string) ([]string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", src, err)
	}
	if info.IsDir() {
		return copyDir(src, dst)
	}
	if err := copyFile(src, dst); err != nil {
		return nil, err
	}
	return []string{dst}, nil
}

// copyDir recursively copies src to dst, excluding entries in excludedNames.
// Symlinks and other special files are skipped.
func copyDir(src, dst string) ([]string, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, entry := range entries {
		if excludedNames[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			sub, err := copyDir(srcPath, dstPath)
			if err != nil {
				return nil, err
			}
			written = append(written, sub...)
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return nil, err
			}
			written = append(written, dstPath)
		}
	}

	return written, nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode().Perm())
}
