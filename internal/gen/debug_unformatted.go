package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and never fails generation itself.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	// Keep it a .go file so editors can syntax highlight, but avoid colliding with
	// real output. The build constraint keeps the package compiling.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	body := append([]byte("//go:build ignore\n\n"), content...)

	return os.WriteFile(filepath.Join(dir, debugName), body, filePerm)
}
