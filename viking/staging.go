package viking

import (
	"fmt"
	"os"
)

// StageResource writes text to a uniquely named temporary file so it can be
// handed to the ingestion endpoint. A non-empty name becomes part of the
// file suffix. The caller owns the file and releases it with Discard.
func StageResource(text, name string) (string, error) {
	suffix := ".md"
	if name != "" {
		suffix = "_" + name + ".md"
	}
	f, err := os.CreateTemp("", "viking-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("stage resource: %w", err)
	}
	if _, err = f.WriteString(text); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("stage resource: %w", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("stage resource: %w", err)
	}
	return f.Name(), nil
}

// Discard removes a staged file. A missing file is not an error.
func Discard(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}
