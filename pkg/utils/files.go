package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceFile is one translation unit read from disk.
type SourceFile struct {
	Path     string // absolute path
	Dir      string // directory containing Path
	Contents string
}

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource resolves relPath and reads it fully. Directories are rejected.
func ReadSource(relPath string) (*SourceFile, error) {
	fullPath, dir, err := GetPathInfo(relPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", relPath, err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", fullPath)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}
	return &SourceFile{Path: fullPath, Dir: dir, Contents: string(data)}, nil
}
