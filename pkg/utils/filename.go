package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// RandomFilename builds a collision-free name for a stored file, keeping the
// original extension so content types stay derivable.
func RandomFilename(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return prefix + "-" + uuid.New().String() + ext
}
