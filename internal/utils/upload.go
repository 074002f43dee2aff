package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadFilename builds a collision-free stored name for a workout photo.
// The file content is opaque to the rest of the system; only this name is
// persisted.
func UploadFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".bin"
	}
	return uuid.NewString() + ext
}
