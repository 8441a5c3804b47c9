package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentPath builds the storage path for an uploaded verification
// document and guarantees it stays inside the upload root, whatever the
// client-supplied filename contains.
func DocumentPath(root string, professionalID uint, originalName string) (string, error) {
	ext := filepath.Ext(filepath.Base(originalName))
	name := fmt.Sprintf("professional_%d_%s_%s%s",
		professionalID,
		time.Now().Format("20060102_150405"),
		uuid.NewString(),
		ext,
	)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	path := filepath.Join(absRoot, name)
	if !strings.HasPrefix(path, absRoot+string(os.PathSeparator)) {
		return "", fmt.Errorf("document path escapes upload root")
	}
	return path, nil
}

// EnsureUploadDir creates the upload root if missing.
func EnsureUploadDir(root string) error {
	return os.MkdirAll(root, 0o755)
}
