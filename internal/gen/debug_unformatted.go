package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outputPath string, content []byte) error {
	if outputPath == "" {
		return nil
	}

	dir, filename := filepath.Split(outputPath)
	if dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	// Keep it a .go file so editors can syntax highlight, but avoid colliding with
	// real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(dir, debugName), content, filePerm)
}
