package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory.
// Files whose content is already up to date are left untouched.
// It returns the paths actually written.
func WriteFiles(files []GeneratedFile) ([]string, error) {
	var written []string

	for _, file := range files {
		outputPath := file.Path()

		existing, err := os.ReadFile(outputPath)
		if err == nil && bytes.Equal(existing, file.Content) {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return written, fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", outputPath, err)
		}

		written = append(written, outputPath)
	}

	return written, nil
}

// StaleReason says why an on-disk file differs from the rendered one.
type StaleReason string

const (
	StaleMissing  StaleReason = "missing"
	StaleOutdated StaleReason = "outdated"
)

// StaleFile is a generated file whose on-disk copy is missing or differs.
type StaleFile struct {
	Path   string
	Reason StaleReason
}

// String returns "path: reason".
func (s StaleFile) String() string {
	return fmt.Sprintf("%s: %s", s.Path, s.Reason)
}

// Check compares rendered files with their on-disk copies.
func Check(files []GeneratedFile) ([]StaleFile, error) {
	var stale []StaleFile

	for _, file := range files {
		existing, err := os.ReadFile(file.Path())
		if errors.Is(err, os.ErrNotExist) {
			stale = append(stale, StaleFile{Path: file.Path(), Reason: StaleMissing})

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file.Path(), err)
		}

		if !bytes.Equal(existing, file.Content) {
			stale = append(stale, StaleFile{Path: file.Path(), Reason: StaleOutdated})
		}
	}

	return stale, nil
}
